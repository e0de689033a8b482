package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

//go:generate mockgen -source=invoice_payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_invoice_payment_usecase.go -package=mocks

var (
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions configures the provider call.
type PaymentOptions struct {
	// Mock skips the provider and approves every payment.
	Mock bool
	// SandboxPayerEmail fills payer.email when the payload carries no payer identity.
	SandboxPayerEmail string
}

// IInvoicePaymentUseCase charges invoices through the payment provider.
//
// An approved payment moves the invoice to "paid" through the transition
// validator; a denied or pending one leaves the invoice untouched.
type IInvoicePaymentUseCase interface {
	Pay(ctx context.Context, invoiceID uint, payload json.RawMessage) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID uint) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo     interfaces.IInvoicePaymentRepository
	invoices interfaces.IInvoiceRepository
	gateway  interfaces.IPaymentGateway
	observer *FlowObserver
	opts     PaymentOptions
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(repo interfaces.IInvoicePaymentRepository, invoices interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway, observer *FlowObserver, opts PaymentOptions) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{repo: repo, invoices: invoices, gateway: gateway, observer: observer, opts: opts}
}

func (u *InvoicePaymentUseCase) Pay(ctx context.Context, invoiceID uint, payload json.RawMessage) (entities.InvoicePayment, error) {
	log.Printf("[payment][usecase] pay start invoice_id=%d payload_len=%d mock=%t", invoiceID, len(payload), u.opts.Mock)
	if invoiceID == 0 {
		return entities.InvoicePayment{}, ErrInvalidID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !u.opts.Mock {
			log.Printf("[payment][usecase] invalid payload invoice_id=%d", invoiceID)
			return entities.InvoicePayment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if !u.opts.Mock && u.gateway == nil {
		return entities.InvoicePayment{}, ErrPaymentGatewayNotConfigured
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading invoice invoice_id=%d err=%v", invoiceID, err)
		return entities.InvoicePayment{}, err
	}
	if inv.ID == 0 {
		return entities.InvoicePayment{}, ErrInvoiceNotFound
	}
	if _, err := checkStatusChange(inv.Status, entities.InvoiceStatusPaid); err != nil {
		log.Printf("[payment][usecase] invoice not payable invoice_id=%d status=%s", invoiceID, inv.Status)
		return entities.InvoicePayment{}, err
	}
	if inv.Status == entities.InvoiceStatusPaid {
		return entities.InvoicePayment{}, ErrInvalidTransition
	}

	payload, err = u.enrichPayload(inv, payload)
	if err != nil {
		return entities.InvoicePayment{}, err
	}

	var (
		providerID     string
		providerStatus string
		providerResp   json.RawMessage
	)
	if u.opts.Mock {
		providerID, providerStatus, providerResp, err = mockProviderResponse(inv, payload)
	} else {
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		err = classifyGatewayError(err)
	}
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed invoice_id=%d err=%v", invoiceID, err)
		return entities.InvoicePayment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success invoice_id=%d provider_payment_id=%s provider_status=%s", invoiceID, providerID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed invoice_id=%d err=%v", invoiceID, err)
	}

	p := entities.InvoicePayment{
		ID:             providerID,
		InvoiceID:      invoiceID,
		Amount:         inv.Amount,
		Date:           time.Now().UTC(),
		Status:         entities.PaymentStatusFromProvider(providerStatus),
		ProviderStatus: providerStatus,
		PayloadRaw:     providerResp,
		Payload:        parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed invoice_id=%d payment_id=%s err=%v", invoiceID, p.ID, err)
		return entities.InvoicePayment{}, err
	}
	u.observer.Record(ctx, entities.FlowEvent{
		Module:   entities.ModuleInvoices,
		EntityID: invoiceID,
		Action:   entities.FlowActionPayment,
		Details:  fmt.Sprintf("payment %s %s", created.ID, created.Status),
	})

	if created.Status == entities.PaymentStatusApproved {
		if err := u.markPaid(ctx, inv); err != nil {
			return entities.InvoicePayment{}, err
		}
	}
	log.Printf("[payment][usecase] pay done invoice_id=%d payment_id=%s status=%s", invoiceID, created.ID, created.Status)
	return created, nil
}

func (u *InvoicePaymentUseCase) markPaid(ctx context.Context, inv entities.Invoice) error {
	updated, err := u.invoices.UpdateStatus(ctx, inv.ID, entities.InvoiceStatusPaid)
	if err == nil && updated.ID == 0 {
		err = ErrInvoiceNotFound
	}
	u.observer.Transition(entities.ModuleInvoices, err)
	if err != nil {
		log.Printf("[payment][usecase] mark paid failed invoice_id=%d err=%v", inv.ID, err)
		return err
	}
	u.observer.Record(ctx, statusChangeEvent(entities.ModuleInvoices, inv.ID, string(inv.Status), string(entities.InvoiceStatusPaid)))
	return nil
}

// enrichPayload links the provider payment to the invoice. The charged amount
// always comes from the stored invoice.
func (u *InvoicePaymentUseCase) enrichPayload(inv entities.Invoice, payload json.RawMessage) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		if u.opts.Mock {
			req = map[string]any{}
		} else {
			return nil, ErrInvalidPaymentPayload
		}
	}

	if !u.opts.Mock {
		if !hasNonEmptyString(req, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id invoice_id=%d", inv.ID)
			return nil, ErrInvalidPaymentPayload
		}
		ensurePayer(req, u.opts.SandboxPayerEmail)
		if !hasPayer(req) {
			log.Printf("[payment][usecase] missing payer invoice_id=%d", inv.ID)
			return nil, ErrInvalidPaymentPayload
		}
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = fmt.Sprintf("invoice-%d", inv.ID)
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice #%d", inv.ID)
	}
	req["transaction_amount"] = inv.Amount

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func mockProviderResponse(inv entities.Invoice, payload json.RawMessage) (string, string, json.RawMessage, error) {
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	resp["transaction_amount"] = inv.Amount
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayer(m map[string]any, sandboxEmail string) {
	if m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && sandboxEmail != "" {
		payer["email"] = sandboxEmail
	}
}

func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func (u *InvoicePaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID uint) ([]entities.InvoicePayment, error) {
	if invoiceID == 0 {
		return nil, ErrInvalidID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}
