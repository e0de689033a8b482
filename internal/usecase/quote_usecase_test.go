package usecase

import (
	"context"
	"errors"
	"testing"

	"voltflow_crm/internal/domain/entities"
	mock_interfaces "voltflow_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("negative amount", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Quote{ClientID: 3, Amount: -0.01})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("job must exist when set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(repo, clients, jobs, nil)

		clients.EXPECT().GetByID(gomock.Any(), uint(3)).Return(entities.Client{ID: 3}, nil)
		jobs.EXPECT().GetByID(gomock.Any(), uint(8)).Return(entities.Job{}, nil)

		_, err := uc.Create(context.Background(), entities.Quote{ClientID: 3, JobID: uintPtr(8), Amount: 10})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("starts as draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewQuoteUseCase(repo, clients, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), uint(3)).Return(entities.Client{ID: 3}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.Status != entities.QuoteStatusDraft {
					t.Fatalf("unexpected status %s", q.Status)
				}
				q.ID = 42
				return q, nil
			},
		)

		if _, err := uc.Create(context.Background(), entities.Quote{ClientID: 3, Amount: 500}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo, nil, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), uint(42)).Return(entities.Quote{ID: 42, Status: entities.QuoteStatusDraft}, nil)
	if _, err := uc.UpdateStatus(context.Background(), 42, entities.QuoteStatusAccepted); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), uint(42)).Return(entities.Quote{ID: 42, Status: entities.QuoteStatusDraft}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), uint(42), entities.QuoteStatusSent).Return(entities.Quote{ID: 42, Status: entities.QuoteStatusSent}, nil)
	q, err := uc.UpdateStatus(context.Background(), 42, entities.QuoteStatusSent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != entities.QuoteStatusSent {
		t.Fatalf("unexpected status %s", q.Status)
	}
}
