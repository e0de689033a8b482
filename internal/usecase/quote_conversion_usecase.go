package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/domain/flow"
	"voltflow_crm/internal/usecase/interfaces"
)

//go:generate mockgen -source=quote_conversion_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_conversion_usecase.go -package=mocks

const (
	conversionQuoteToInvoice = string(flow.ConversionQuoteToInvoice)

	// invoiceDueAfter is the due date offset of a generated invoice.
	invoiceDueAfter = 30 * 24 * time.Hour
)

type QuoteStats struct {
	Total          int64
	Accepted       int64
	ByStatus       map[string]int64
	AcceptanceRate float64
}

// IQuoteConversionUseCase turns accepted quotes into draft invoices.
type IQuoteConversionUseCase interface {
	ConvertQuoteToInvoice(ctx context.Context, quoteID uint) (entities.Invoice, error)
	GetQuoteStats(ctx context.Context) (QuoteStats, error)
}

type QuoteConversionUseCase struct {
	quotes   interfaces.IQuoteRepository
	invoices interfaces.IInvoiceRepository
	tx       interfaces.ITransactor
	observer *FlowObserver
	now      func() time.Time
}

var _ IQuoteConversionUseCase = (*QuoteConversionUseCase)(nil)

func NewQuoteConversionUseCase(quotes interfaces.IQuoteRepository, invoices interfaces.IInvoiceRepository, tx interfaces.ITransactor, observer *FlowObserver) *QuoteConversionUseCase {
	return &QuoteConversionUseCase{
		quotes:   quotes,
		invoices: invoices,
		tx:       tx,
		observer: observer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuoteConversionUseCase) ConvertQuoteToInvoice(ctx context.Context, quoteID uint) (entities.Invoice, error) {
	log.Printf("[flow][usecase] convert-quote start quote_id=%d", quoteID)
	if quoteID == 0 {
		return entities.Invoice{}, ErrInvalidID
	}

	var (
		created entities.Invoice
		from    entities.QuoteStatus
	)
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		quote, err := u.quotes.GetByID(ctx, quoteID)
		if err != nil {
			return err
		}
		if quote.ID == 0 {
			return ErrQuoteNotFound
		}
		from = quote.Status
		if quote.Status != entities.QuoteStatusAccepted {
			if err := flow.ValidateTransition(quote.Status, entities.QuoteStatusAccepted); err != nil {
				return err
			}
		}

		existing, err := u.invoices.GetByQuoteID(ctx, quoteID)
		if err != nil {
			return err
		}
		if existing.ID != 0 {
			return ErrQuoteAlreadyInvoiced
		}

		created, err = u.invoices.Create(ctx, invoiceFromQuote(quote, u.now()))
		if err != nil {
			if errors.Is(err, interfaces.ErrConflict) {
				return ErrQuoteAlreadyInvoiced
			}
			return err
		}

		if quote.Status == entities.QuoteStatusAccepted {
			return nil
		}
		updated, err := u.quotes.UpdateStatus(ctx, quoteID, entities.QuoteStatusAccepted)
		if err != nil {
			return err
		}
		if updated.ID == 0 {
			return ErrQuoteNotFound
		}
		return nil
	})
	u.observer.Conversion(conversionQuoteToInvoice, err)
	if err != nil {
		log.Printf("[flow][usecase] convert-quote failed quote_id=%d err=%v", quoteID, err)
		return entities.Invoice{}, err
	}

	u.observer.Record(ctx, entities.FlowEvent{
		Module:        entities.ModuleQuotes,
		EntityID:      quoteID,
		Action:        entities.FlowActionConvert,
		FromStatus:    string(from),
		ToStatus:      string(entities.QuoteStatusAccepted),
		RelatedModule: entities.ModuleInvoices,
		RelatedID:     created.ID,
	})
	log.Printf("[flow][usecase] convert-quote success quote_id=%d invoice_id=%d", quoteID, created.ID)
	return created, nil
}

func invoiceFromQuote(q entities.Quote, now time.Time) entities.Invoice {
	quoteID := q.ID
	terms := strings.TrimSpace(q.Terms)
	if terms == "" {
		terms = entities.DefaultPaymentTerms
	}
	return entities.Invoice{
		ClientID:     q.ClientID,
		JobID:        q.JobID,
		QuoteID:      &quoteID,
		Amount:       q.Amount,
		Status:       entities.InvoiceStatusDraft,
		DueDate:      now.Add(invoiceDueAfter),
		PaymentTerms: terms,
		Notes:        fmt.Sprintf("Generated from quote #%d. Original notes: %s", q.ID, q.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (u *QuoteConversionUseCase) GetQuoteStats(ctx context.Context) (QuoteStats, error) {
	counts, err := u.quotes.CountByStatus(ctx)
	if err != nil {
		return QuoteStats{}, err
	}

	byStatus := make(map[string]int64, len(entities.QuoteStatuses()))
	for _, s := range entities.QuoteStatuses() {
		byStatus[string(s)] = 0
	}
	var total int64
	for status, n := range counts {
		byStatus[status] += n
		total += n
	}

	accepted := byStatus[string(entities.QuoteStatusAccepted)]
	return QuoteStats{
		Total:          total,
		Accepted:       accepted,
		ByStatus:       byStatus,
		AcceptanceRate: rate(accepted, total),
	}, nil
}
