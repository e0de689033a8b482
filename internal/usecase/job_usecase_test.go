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

func TestJobUseCase_Create(t *testing.T) {
	t.Run("client must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewJobUseCase(repo, clients, nil)

		clients.EXPECT().GetByID(gomock.Any(), uint(3)).Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), entities.Job{ClientID: 3, Title: "Panel swap"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("missing client id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Job{Title: "Panel swap"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil)
		start := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
		end := start.Add(-time.Hour)
		_, err := uc.Create(context.Background(), entities.Job{ClientID: 3, Title: "Panel swap", StartDate: &start, EndDate: &end})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Job{ClientID: 3, Title: "Panel swap", Priority: "urgent"})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewJobUseCase(repo, clients, nil)

		clients.EXPECT().GetByID(gomock.Any(), uint(3)).Return(entities.Client{ID: 3}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusPending || j.Priority != entities.JobPriorityMedium {
					t.Fatalf("unexpected defaults: %+v", j)
				}
				j.ID = 4
				return j, nil
			},
		)

		j, err := uc.Create(context.Background(), entities.Job{ClientID: 3, Title: "Panel swap", AssignedTechnicians: []string{"t-1"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.ID != 4 {
			t.Fatalf("unexpected job: %+v", j)
		}
	})
}

func TestJobUseCase_UpdateStatus(t *testing.T) {
	t.Run("terminal status cannot move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(entities.Job{ID: 4, Status: entities.JobStatusCompleted}, nil)

		_, err := uc.UpdateStatus(context.Background(), 4, entities.JobStatusInProgress)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("repo failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		metrics := mock_interfaces.NewMockIFlowMetrics(ctrl)
		uc := NewJobUseCase(repo, nil, NewFlowObserver(nil, metrics))

		repo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(entities.Job{ID: 4, Status: entities.JobStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), uint(4), entities.JobStatusScheduled).Return(entities.Job{}, errors.New("db"))
		metrics.EXPECT().ObserveTransition("jobs", "error")

		_, err := uc.UpdateStatus(context.Background(), 4, entities.JobStatusScheduled)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
