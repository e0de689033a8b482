package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"voltflow_crm/internal/domain/entities"
	mock_interfaces "voltflow_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFlowSweeperUseCase_Sweep(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("marks overdue and expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		metrics := mock_interfaces.NewMockIFlowMetrics(ctrl)
		uc := NewFlowSweeperUseCase(quotes, invoices, NewFlowObserver(nil, metrics))
		uc.now = func() time.Time { return fixed }

		invoices.EXPECT().ListDueBefore(gomock.Any(), fixed, overdueCandidates).Return([]entities.Invoice{
			{ID: 1, Status: entities.InvoiceStatusSent},
			{ID: 2, Status: entities.InvoiceStatusViewed},
		}, nil)
		invoices.EXPECT().UpdateStatusFrom(gomock.Any(), uint(1), entities.InvoiceStatusSent, entities.InvoiceStatusOverdue).Return(entities.Invoice{ID: 1}, nil)
		invoices.EXPECT().UpdateStatusFrom(gomock.Any(), uint(2), entities.InvoiceStatusViewed, entities.InvoiceStatusOverdue).Return(entities.Invoice{ID: 2}, nil)
		quotes.EXPECT().ListValidUntilBefore(gomock.Any(), fixed, expiryCandidates).Return([]entities.Quote{
			{ID: 5, Status: entities.QuoteStatusReviewed},
		}, nil)
		quotes.EXPECT().UpdateStatusFrom(gomock.Any(), uint(5), entities.QuoteStatusReviewed, entities.QuoteStatusExpired).Return(entities.Quote{ID: 5}, nil)
		metrics.EXPECT().ObserveSweep("invoices", 2)
		metrics.EXPECT().ObserveSweep("quotes", 1)

		res, err := uc.Sweep(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OverdueInvoices != 2 || res.ExpiredQuotes != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("skips records the registry does not allow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewFlowSweeperUseCase(quotes, invoices, nil)

		invoices.EXPECT().ListDueBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Invoice{{ID: 1, Status: entities.InvoiceStatusPaid}}, nil)
		quotes.EXPECT().ListValidUntilBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := uc.Sweep(context.Background())
		if err != nil || res.OverdueInvoices != 0 {
			t.Fatalf("unexpected result=%+v err=%v", res, err)
		}
	})

	t.Run("records changed after listing are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		events := mock_interfaces.NewMockIFlowEventRepository(ctrl)
		metrics := mock_interfaces.NewMockIFlowMetrics(ctrl)
		uc := NewFlowSweeperUseCase(quotes, invoices, NewFlowObserver(events, metrics))

		invoices.EXPECT().ListDueBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Invoice{{ID: 1, Status: entities.InvoiceStatusSent}}, nil)
		invoices.EXPECT().UpdateStatusFrom(gomock.Any(), uint(1), entities.InvoiceStatusSent, entities.InvoiceStatusOverdue).Return(entities.Invoice{}, nil)
		quotes.EXPECT().ListValidUntilBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Quote{{ID: 5, Status: entities.QuoteStatusSent}}, nil)
		quotes.EXPECT().UpdateStatusFrom(gomock.Any(), uint(5), entities.QuoteStatusSent, entities.QuoteStatusExpired).Return(entities.Quote{}, nil)
		metrics.EXPECT().ObserveSweep("invoices", 0)
		metrics.EXPECT().ObserveSweep("quotes", 0)

		res, err := uc.Sweep(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OverdueInvoices != 0 || res.ExpiredQuotes != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("failure does not stop the other pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewFlowSweeperUseCase(quotes, invoices, nil)

		invoices.EXPECT().ListDueBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))
		quotes.EXPECT().ListValidUntilBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Quote{{ID: 5, Status: entities.QuoteStatusSent}}, nil)
		quotes.EXPECT().UpdateStatusFrom(gomock.Any(), uint(5), entities.QuoteStatusSent, entities.QuoteStatusExpired).Return(entities.Quote{ID: 5}, nil)

		res, err := uc.Sweep(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if res.ExpiredQuotes != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
