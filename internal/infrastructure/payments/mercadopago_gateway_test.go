package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

type fakePaymentClient struct {
	payment.Client
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakePaymentClient) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestNewMercadoPagoGateway(t *testing.T) {
	if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
	g, err := NewMercadoPagoGateway("TEST-token")
	if err != nil || g == nil {
		t.Fatalf("unexpected result g=%v err=%v", g, err)
	}
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		if _, _, _, err := g.CreatePayment(ctx, json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		fake := &fakePaymentClient{resp: &payment.Response{ID: 123, Status: "approved"}}
		g := &MercadoPagoGateway{client: fake}

		id, status, raw, err := g.CreatePayment(ctx, json.RawMessage(`{"transaction_amount":150.5,"external_reference":"invoice-9","payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if id != "123" || status != "approved" {
			t.Fatalf("unexpected id=%s status=%s", id, status)
		}
		if fake.got.TransactionAmount != 150.5 || fake.got.ExternalReference != "invoice-9" {
			t.Fatalf("unexpected request: %+v", fake.got)
		}
		var decoded map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		boom := errors.New(`{"status":400,"error":"bad_request"}`)
		g := &MercadoPagoGateway{client: &fakePaymentClient{err: boom}}
		if _, _, _, err := g.CreatePayment(ctx, json.RawMessage(`{}`)); !errors.Is(err, boom) {
			t.Fatalf("expected sdk error, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakePaymentClient{}}
		if _, _, _, err := g.CreatePayment(ctx, json.RawMessage(`[1,2]`)); err == nil {
			t.Fatalf("expected error")
		}
	})
}
