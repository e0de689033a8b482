package usecase

import (
	"context"
	"errors"
	"testing"

	"voltflow_crm/internal/domain/entities"
	mock_interfaces "voltflow_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("lead reference is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo, nil, "US")

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.LeadID != nil || c.Status != entities.ClientStatusProspective {
					t.Fatalf("unexpected client: %+v", c)
				}
				c.ID = 2
				return c, nil
			},
		)

		if _, err := uc.Create(context.Background(), entities.Client{Name: "Acme", LeadID: uintPtr(7)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewClientUseCase(nil, nil, "US")
		_, err := uc.Create(context.Background(), entities.Client{Name: "Acme", Status: "gold"})
		if !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})
}

func TestClientUseCase_UpdateStatus(t *testing.T) {
	cases := []struct {
		name    string
		from    entities.ClientStatus
		to      entities.ClientStatus
		write   bool
		wantErr error
		outcome string
	}{
		{name: "allowed", from: entities.ClientStatusProspective, to: entities.ClientStatusActive, write: true, outcome: "success"},
		{name: "not allowed", from: entities.ClientStatusProspective, to: entities.ClientStatusVIP, wantErr: ErrInvalidTransition, outcome: "rejected"},
		{name: "same status", from: entities.ClientStatusActive, to: entities.ClientStatusActive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIClientRepository(ctrl)
			metrics := mock_interfaces.NewMockIFlowMetrics(ctrl)
			uc := NewClientUseCase(repo, NewFlowObserver(nil, metrics), "US")

			repo.EXPECT().GetByID(gomock.Any(), uint(2)).Return(entities.Client{ID: 2, Status: tc.from}, nil)
			if tc.write {
				repo.EXPECT().UpdateStatus(gomock.Any(), uint(2), tc.to).Return(entities.Client{ID: 2, Status: tc.to}, nil)
			}
			if tc.outcome != "" {
				metrics.EXPECT().ObserveTransition("clients", tc.outcome)
			}

			c, err := uc.UpdateStatus(context.Background(), 2, tc.to)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Status != tc.to {
				t.Fatalf("expected %s, got %s", tc.to, c.Status)
			}
		})
	}
}
