package usecase

import (
	"context"
	"errors"
	"testing"

	"voltflow_crm/internal/domain/entities"
	mock_interfaces "voltflow_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLeadUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, "US")
		_, err := uc.Create(context.Background(), entities.Lead{Name: "  "})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative value", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, "US")
		_, err := uc.Create(context.Background(), entities.Lead{Name: "A", EstimatedValue: -1})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, "US")
		_, err := uc.Create(context.Background(), entities.Lead{Name: "A", Status: "Closed Won"})
		if !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("converted cannot be created", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, "US")
		_, err := uc.Create(context.Background(), entities.Lead{Name: "A", Status: entities.LeadStatusConverted})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("defaults and phone normalisation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, "US")

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Lead{})).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.Status != entities.LeadStatusNew || l.Source != entities.LeadSourceOther {
					t.Fatalf("unexpected defaults: %+v", l)
				}
				if l.Phone != "+12024561111" {
					t.Fatalf("expected normalised phone, got %q", l.Phone)
				}
				l.ID = 1
				return l, nil
			},
		)

		l, err := uc.Create(context.Background(), entities.Lead{Name: " A ", Phone: "202-456-1111"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.ID != 1 || l.Name != "A" {
			t.Fatalf("unexpected lead: %+v", l)
		}
	})
}

func TestLeadUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockILeadRepository(ctrl)
	uc := NewLeadUseCase(repo, nil, "US")

	if _, err := uc.GetByID(context.Background(), 0); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), uint(5)).Return(entities.Lead{}, nil)
	if _, err := uc.GetByID(context.Background(), 5); !errors.Is(err, ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}

func TestLeadUseCase_Update(t *testing.T) {
	t.Run("patches only given fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, "US")

		existing := entities.Lead{ID: 5, Name: "A", Email: "a@x.com", Status: entities.LeadStatusContacted, Source: entities.LeadSourceWebsite}
		repo.EXPECT().GetByID(gomock.Any(), uint(5)).Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.Name != "B" || l.Email != "a@x.com" || l.Status != entities.LeadStatusContacted {
					t.Fatalf("unexpected lead: %+v", l)
				}
				return l, nil
			},
		)

		name := "B"
		if _, err := uc.Update(context.Background(), 5, LeadPatch{Name: &name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadUseCase(repo, nil, "US")

		repo.EXPECT().GetByID(gomock.Any(), uint(5)).Return(entities.Lead{ID: 5, Name: "A"}, nil)

		src := entities.LeadSource("billboard")
		if _, err := uc.Update(context.Background(), 5, LeadPatch{Source: &src}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestLeadUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockILeadRepository(ctrl)
	uc := NewLeadUseCase(repo, nil, "US")

	repo.EXPECT().Delete(gomock.Any(), uint(5)).Return(false, nil)
	if err := uc.Delete(context.Background(), 5); !errors.Is(err, ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}

	repo.EXPECT().Delete(gomock.Any(), uint(5)).Return(true, nil)
	if err := uc.Delete(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
