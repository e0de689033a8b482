package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"
	mock_interfaces "voltflow_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func qualifiedLead() entities.Lead {
	return entities.Lead{
		ID:             7,
		Name:           "A",
		Email:          "a@x.com",
		Phone:          "555",
		Source:         entities.LeadSourceReferral,
		EstimatedValue: 1200,
		Notes:          "likes mornings",
		Status:         entities.LeadStatusQualified,
	}
}

func TestLeadConversionUseCase_ConvertLeadToClient(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewLeadConversionUseCase(nil, nil, nil, nil)
		_, err := uc.ConvertLeadToClient(context.Background(), 0)
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("not found performs no write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		metrics := mock_interfaces.NewMockIFlowMetrics(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), NewFlowObserver(nil, metrics))

		leads.EXPECT().GetByID(gomock.Any(), uint(99)).Return(entities.Lead{}, nil)
		metrics.EXPECT().ObserveConversion("lead_to_client", "error")

		_, err := uc.ConvertLeadToClient(context.Background(), 99)
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("status does not allow conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		metrics := mock_interfaces.NewMockIFlowMetrics(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), NewFlowObserver(nil, metrics))

		lead := qualifiedLead()
		lead.Status = entities.LeadStatusNew
		leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(lead, nil)
		metrics.EXPECT().ObserveConversion("lead_to_client", "rejected")

		_, err := uc.ConvertLeadToClient(context.Background(), 7)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("client already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), nil)

		leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(qualifiedLead(), nil)
		clients.EXPECT().GetByLeadID(gomock.Any(), uint(7)).Return(entities.Client{ID: 3, LeadID: uintPtr(7)}, nil)

		_, err := uc.ConvertLeadToClient(context.Background(), 7)
		if !errors.Is(err, ErrLeadAlreadyConverted) {
			t.Fatalf("expected ErrLeadAlreadyConverted, got %v", err)
		}
	})

	t.Run("unique conflict on insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), nil)

		leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(qualifiedLead(), nil)
		clients.EXPECT().GetByLeadID(gomock.Any(), uint(7)).Return(entities.Client{}, nil)
		clients.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, fmt.Errorf("insert client: %w", interfaces.ErrConflict))

		_, err := uc.ConvertLeadToClient(context.Background(), 7)
		if !errors.Is(err, ErrLeadAlreadyConverted) {
			t.Fatalf("expected ErrLeadAlreadyConverted, got %v", err)
		}
	})

	t.Run("lead update failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), nil)

		leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(qualifiedLead(), nil)
		clients.EXPECT().GetByLeadID(gomock.Any(), uint(7)).Return(entities.Client{}, nil)
		clients.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{ID: 11}, nil)
		leads.EXPECT().UpdateStatus(gomock.Any(), uint(7), entities.LeadStatusConverted).Return(entities.Lead{}, errors.New("db"))

		_, err := uc.ConvertLeadToClient(context.Background(), 7)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		events := mock_interfaces.NewMockIFlowEventRepository(ctrl)
		metrics := mock_interfaces.NewMockIFlowMetrics(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), NewFlowObserver(events, metrics))

		lead := qualifiedLead()
		leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(lead, nil)
		clients.EXPECT().GetByLeadID(gomock.Any(), uint(7)).Return(entities.Client{}, nil)
		clients.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.LeadID == nil || *c.LeadID != 7 {
					t.Fatalf("expected lead_id 7, got %v", c.LeadID)
				}
				if c.Status != entities.ClientStatusProspective || c.EstimatedValue != 1200 || c.Name != "A" || c.Email != "a@x.com" {
					t.Fatalf("unexpected client: %+v", c)
				}
				if !strings.Contains(c.Notes, "referral") || !strings.Contains(c.Notes, "likes mornings") {
					t.Fatalf("unexpected notes: %q", c.Notes)
				}
				c.ID = 11
				return c, nil
			},
		)
		lead.Status = entities.LeadStatusConverted
		leads.EXPECT().UpdateStatus(gomock.Any(), uint(7), entities.LeadStatusConverted).Return(lead, nil)
		metrics.EXPECT().ObserveConversion("lead_to_client", "success")
		events.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.FlowEvent{})).DoAndReturn(
			func(_ context.Context, e entities.FlowEvent) (entities.FlowEvent, error) {
				if e.Action != entities.FlowActionConvert || e.EntityID != 7 || e.RelatedID != 11 || e.ID == "" {
					t.Fatalf("unexpected event: %+v", e)
				}
				return e, nil
			},
		)

		c, err := uc.ConvertLeadToClient(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != 11 {
			t.Fatalf("expected client 11, got %d", c.ID)
		}
	})

	t.Run("event failure does not fail the conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		events := mock_interfaces.NewMockIFlowEventRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), NewFlowObserver(events, nil))

		leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(qualifiedLead(), nil)
		clients.EXPECT().GetByLeadID(gomock.Any(), uint(7)).Return(entities.Client{}, nil)
		clients.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{ID: 11}, nil)
		leads.EXPECT().UpdateStatus(gomock.Any(), uint(7), entities.LeadStatusConverted).Return(entities.Lead{ID: 7}, nil)
		events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.FlowEvent{}, errors.New("dynamo"))

		if _, err := uc.ConvertLeadToClient(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLeadConversionUseCase_DeleteClientByLeadID(t *testing.T) {
	t.Run("no client is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewLeadConversionUseCase(nil, clients, inlineTx(ctrl), nil)

		clients.EXPECT().GetByLeadID(gomock.Any(), uint(7)).Return(entities.Client{}, nil)

		if err := uc.DeleteClientByLeadID(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewLeadConversionUseCase(nil, clients, inlineTx(ctrl), nil)

		clients.EXPECT().GetByLeadID(gomock.Any(), uint(7)).Return(entities.Client{}, errors.New("db"))

		err := uc.DeleteClientByLeadID(context.Background(), 7)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("deletes the client and moves the lead back to qualified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		events := mock_interfaces.NewMockIFlowEventRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), NewFlowObserver(events, nil))

		converted := qualifiedLead()
		converted.Status = entities.LeadStatusConverted
		gomock.InOrder(
			clients.EXPECT().GetByLeadID(gomock.Any(), uint(7)).Return(entities.Client{ID: 11, LeadID: uintPtr(7)}, nil),
			clients.EXPECT().Delete(gomock.Any(), uint(11)).Return(true, nil),
			leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(converted, nil),
			leads.EXPECT().UpdateStatus(gomock.Any(), uint(7), entities.LeadStatusQualified).Return(qualifiedLead(), nil),
		)
		var actions []entities.FlowAction
		events.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.FlowEvent) (entities.FlowEvent, error) {
				actions = append(actions, e.Action)
				if e.Action == entities.FlowActionUnconvert && e.RelatedID != 11 {
					t.Fatalf("unexpected event: %+v", e)
				}
				return e, nil
			},
		).Times(2)

		if err := uc.DeleteClientByLeadID(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(actions) != 2 || actions[0] != entities.FlowActionUnconvert {
			t.Fatalf("unexpected events %v", actions)
		}
	})

	t.Run("lead outside converted keeps its status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), nil)

		clients.EXPECT().GetByLeadID(gomock.Any(), uint(7)).Return(entities.Client{ID: 11, LeadID: uintPtr(7)}, nil)
		clients.EXPECT().Delete(gomock.Any(), uint(11)).Return(true, nil)
		leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(qualifiedLead(), nil)

		if err := uc.DeleteClientByLeadID(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("status reset failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), nil)

		converted := qualifiedLead()
		converted.Status = entities.LeadStatusConverted
		clients.EXPECT().GetByLeadID(gomock.Any(), uint(7)).Return(entities.Client{ID: 11, LeadID: uintPtr(7)}, nil)
		clients.EXPECT().Delete(gomock.Any(), uint(11)).Return(true, nil)
		leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(converted, nil)
		leads.EXPECT().UpdateStatus(gomock.Any(), uint(7), entities.LeadStatusQualified).Return(entities.Lead{}, errors.New("db"))

		err := uc.DeleteClientByLeadID(context.Background(), 7)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestLeadConversionUseCase_ChangeLeadStatus(t *testing.T) {
	t.Run("same status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, nil, inlineTx(ctrl), nil)

		leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(qualifiedLead(), nil)

		l, err := uc.ChangeLeadStatus(context.Background(), 7, entities.LeadStatusQualified)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.Status != entities.LeadStatusQualified {
			t.Fatalf("unexpected status %s", l.Status)
		}
	})

	t.Run("rejected transition writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		metrics := mock_interfaces.NewMockIFlowMetrics(ctrl)
		uc := NewLeadConversionUseCase(leads, nil, inlineTx(ctrl), NewFlowObserver(nil, metrics))

		lead := qualifiedLead()
		lead.Status = entities.LeadStatusLost
		leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(lead, nil)
		metrics.EXPECT().ObserveTransition("leads", "rejected")

		_, err := uc.ChangeLeadStatus(context.Background(), 7, entities.LeadStatusNew)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("leaving qualified removes the client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), nil)

		leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(qualifiedLead(), nil)
		gomock.InOrder(
			clients.EXPECT().GetByLeadID(gomock.Any(), uint(7)).Return(entities.Client{ID: 11}, nil),
			clients.EXPECT().Delete(gomock.Any(), uint(11)).Return(true, nil),
			leads.EXPECT().UpdateStatus(gomock.Any(), uint(7), entities.LeadStatusContacted).Return(entities.Lead{ID: 7, Status: entities.LeadStatusContacted}, nil),
		)

		l, err := uc.ChangeLeadStatus(context.Background(), 7, entities.LeadStatusContacted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.Status != entities.LeadStatusContacted {
			t.Fatalf("unexpected status %s", l.Status)
		}
	})

	t.Run("leaving converted removes the client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), nil)

		converted := qualifiedLead()
		converted.Status = entities.LeadStatusConverted
		leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(converted, nil)
		gomock.InOrder(
			clients.EXPECT().GetByLeadID(gomock.Any(), uint(7)).Return(entities.Client{ID: 11, LeadID: uintPtr(7)}, nil),
			clients.EXPECT().Delete(gomock.Any(), uint(11)).Return(true, nil),
			leads.EXPECT().UpdateStatus(gomock.Any(), uint(7), entities.LeadStatusQualified).Return(qualifiedLead(), nil),
		)

		l, err := uc.ChangeLeadStatus(context.Background(), 7, entities.LeadStatusQualified)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.Status != entities.LeadStatusQualified {
			t.Fatalf("unexpected status %s", l.Status)
		}
	})

	t.Run("other transitions leave clients alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), nil)

		lead := qualifiedLead()
		lead.Status = entities.LeadStatusNew
		leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(lead, nil)
		leads.EXPECT().UpdateStatus(gomock.Any(), uint(7), entities.LeadStatusContacted).Return(entities.Lead{ID: 7, Status: entities.LeadStatusContacted}, nil)

		if _, err := uc.ChangeLeadStatus(context.Background(), 7, entities.LeadStatusContacted); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("converted runs the conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, clients, inlineTx(ctrl), nil)

		converted := qualifiedLead()
		converted.Status = entities.LeadStatusConverted
		gomock.InOrder(
			leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(qualifiedLead(), nil),
			leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(qualifiedLead(), nil),
			leads.EXPECT().UpdateStatus(gomock.Any(), uint(7), entities.LeadStatusConverted).Return(converted, nil),
			leads.EXPECT().GetByID(gomock.Any(), uint(7)).Return(converted, nil),
		)
		clients.EXPECT().GetByLeadID(gomock.Any(), uint(7)).Return(entities.Client{}, nil)
		clients.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{ID: 11}, nil)

		l, err := uc.ChangeLeadStatus(context.Background(), 7, entities.LeadStatusConverted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.Status != entities.LeadStatusConverted {
			t.Fatalf("unexpected status %s", l.Status)
		}
	})
}

func TestLeadConversionUseCase_GetConversionStats(t *testing.T) {
	t.Run("empty table has zero rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, nil, nil, nil)

		leads.EXPECT().CountByStatus(gomock.Any()).Return(map[string]int64{}, nil)

		s, err := uc.GetConversionStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Total != 0 || s.ConversionRate != 0 {
			t.Fatalf("unexpected stats: %+v", s)
		}
		if len(s.ByStatus) != len(entities.LeadStatuses()) {
			t.Fatalf("expected every status present, got %v", s.ByStatus)
		}
	})

	t.Run("rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, nil, nil, nil)

		leads.EXPECT().CountByStatus(gomock.Any()).Return(map[string]int64{"new": 2, "converted": 1, "lost": 1}, nil)

		s, err := uc.GetConversionStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Total != 4 || s.Converted != 1 || s.ConversionRate != 25 || s.ByStatus["new"] != 2 || s.ByStatus["qualified"] != 0 {
			t.Fatalf("unexpected stats: %+v", s)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leads := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewLeadConversionUseCase(leads, nil, nil, nil)

		leads.EXPECT().CountByStatus(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.GetConversionStats(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
