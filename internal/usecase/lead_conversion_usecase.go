package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/domain/flow"
	"voltflow_crm/internal/usecase/interfaces"
)

//go:generate mockgen -source=lead_conversion_usecase.go -destination=../adapter/http/handlers/mocks/mock_lead_conversion_usecase.go -package=mocks

const conversionLeadToClient = string(flow.ConversionLeadToClient)

// LeadConversionStats counts leads per status. ByStatus always carries every
// lead status, zero when absent.
type LeadConversionStats struct {
	Total          int64
	Converted      int64
	ByStatus       map[string]int64
	ConversionRate float64
}

// ILeadConversionUseCase promotes leads into clients and undoes the promotion.
//
//   - ConvertLeadToClient inserts the client and marks the lead converted in one transaction.
//   - DeleteClientByLeadID is the reverse path; a lead without a client is a no-op,
//     and a converted lead whose client is removed falls back to "qualified".
//   - ChangeLeadStatus is the only status write for leads; it routes "converted"
//     through the conversion and removes the client, in the same transaction,
//     when a lead leaves "converted" or "qualified".
type ILeadConversionUseCase interface {
	ConvertLeadToClient(ctx context.Context, leadID uint) (entities.Client, error)
	DeleteClientByLeadID(ctx context.Context, leadID uint) error
	ChangeLeadStatus(ctx context.Context, leadID uint, to entities.LeadStatus) (entities.Lead, error)
	GetConversionStats(ctx context.Context) (LeadConversionStats, error)
}

type LeadConversionUseCase struct {
	leads    interfaces.ILeadRepository
	clients  interfaces.IClientRepository
	tx       interfaces.ITransactor
	observer *FlowObserver
}

var _ ILeadConversionUseCase = (*LeadConversionUseCase)(nil)

func NewLeadConversionUseCase(leads interfaces.ILeadRepository, clients interfaces.IClientRepository, tx interfaces.ITransactor, observer *FlowObserver) *LeadConversionUseCase {
	return &LeadConversionUseCase{leads: leads, clients: clients, tx: tx, observer: observer}
}

func (u *LeadConversionUseCase) ConvertLeadToClient(ctx context.Context, leadID uint) (entities.Client, error) {
	log.Printf("[flow][usecase] convert-lead start lead_id=%d", leadID)
	if leadID == 0 {
		return entities.Client{}, ErrInvalidID
	}

	var (
		created entities.Client
		from    entities.LeadStatus
	)
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		lead, err := u.leads.GetByID(ctx, leadID)
		if err != nil {
			return err
		}
		if lead.ID == 0 {
			return ErrLeadNotFound
		}
		from = lead.Status
		if lead.Status != entities.LeadStatusConverted {
			if err := flow.ValidateTransition(lead.Status, entities.LeadStatusConverted); err != nil {
				return err
			}
		}

		existing, err := u.clients.GetByLeadID(ctx, leadID)
		if err != nil {
			return err
		}
		if existing.ID != 0 {
			return ErrLeadAlreadyConverted
		}

		created, err = u.clients.Create(ctx, clientFromLead(lead))
		if err != nil {
			if errors.Is(err, interfaces.ErrConflict) {
				return ErrLeadAlreadyConverted
			}
			return err
		}

		if lead.Status == entities.LeadStatusConverted {
			return nil
		}
		updated, err := u.leads.UpdateStatus(ctx, leadID, entities.LeadStatusConverted)
		if err != nil {
			return err
		}
		if updated.ID == 0 {
			return ErrLeadNotFound
		}
		return nil
	})
	u.observer.Conversion(conversionLeadToClient, err)
	if err != nil {
		log.Printf("[flow][usecase] convert-lead failed lead_id=%d err=%v", leadID, err)
		return entities.Client{}, err
	}

	u.observer.Record(ctx, entities.FlowEvent{
		Module:        entities.ModuleLeads,
		EntityID:      leadID,
		Action:        entities.FlowActionConvert,
		FromStatus:    string(from),
		ToStatus:      string(entities.LeadStatusConverted),
		RelatedModule: entities.ModuleClients,
		RelatedID:     created.ID,
	})
	log.Printf("[flow][usecase] convert-lead success lead_id=%d client_id=%d", leadID, created.ID)
	return created, nil
}

func clientFromLead(lead entities.Lead) entities.Client {
	leadID := lead.ID
	return entities.Client{
		Name:           lead.Name,
		Email:          lead.Email,
		Phone:          lead.Phone,
		Status:         entities.ClientStatusProspective,
		EstimatedValue: lead.EstimatedValue,
		Source:         string(lead.Source),
		Notes:          fmt.Sprintf("Converted from lead. Source: %s. Original notes: %s", lead.Source, lead.Notes),
		AssignedTo:     lead.AssignedTo,
		LeadID:         &leadID,
	}
}

func (u *LeadConversionUseCase) DeleteClientByLeadID(ctx context.Context, leadID uint) error {
	if leadID == 0 {
		return ErrInvalidID
	}
	var (
		removed entities.Client
		reset   bool
	)
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if removed, err = u.deleteClientByLeadID(ctx, leadID); err != nil {
			return err
		}
		if removed.ID == 0 {
			return nil
		}
		reset, err = u.demoteConverted(ctx, leadID)
		return err
	})
	if err != nil {
		log.Printf("[flow][usecase] delete-client-by-lead failed lead_id=%d err=%v", leadID, err)
		return err
	}
	if removed.ID != 0 {
		u.recordUnconvert(ctx, leadID, removed.ID)
	}
	if reset {
		u.observer.Transition(entities.ModuleLeads, nil)
		u.observer.Record(ctx, statusChangeEvent(entities.ModuleLeads, leadID,
			string(entities.LeadStatusConverted), string(entities.LeadStatusQualified)))
	}
	return nil
}

// demoteConverted moves a converted lead back to qualified once its client is
// gone. Leads in any other status, or already deleted, are left alone.
func (u *LeadConversionUseCase) demoteConverted(ctx context.Context, leadID uint) (bool, error) {
	lead, err := u.leads.GetByID(ctx, leadID)
	if err != nil {
		return false, err
	}
	if lead.ID == 0 || lead.Status != entities.LeadStatusConverted {
		return false, nil
	}
	if err := flow.ValidateTransition(lead.Status, entities.LeadStatusQualified); err != nil {
		return false, err
	}
	updated, err := u.leads.UpdateStatus(ctx, leadID, entities.LeadStatusQualified)
	if err != nil {
		return false, err
	}
	if updated.ID == 0 {
		return false, ErrLeadNotFound
	}
	return true, nil
}

// deleteClientByLeadID returns the removed client, or a zero client when the
// lead had none.
func (u *LeadConversionUseCase) deleteClientByLeadID(ctx context.Context, leadID uint) (entities.Client, error) {
	c, err := u.clients.GetByLeadID(ctx, leadID)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == 0 {
		return entities.Client{}, nil
	}
	if _, err := u.clients.Delete(ctx, c.ID); err != nil {
		return entities.Client{}, err
	}
	log.Printf("[flow][usecase] client removed lead_id=%d client_id=%d", leadID, c.ID)
	return c, nil
}

func (u *LeadConversionUseCase) recordUnconvert(ctx context.Context, leadID, clientID uint) {
	u.observer.Record(ctx, entities.FlowEvent{
		Module:        entities.ModuleLeads,
		EntityID:      leadID,
		Action:        entities.FlowActionUnconvert,
		RelatedModule: entities.ModuleClients,
		RelatedID:     clientID,
	})
}

func (u *LeadConversionUseCase) ChangeLeadStatus(ctx context.Context, leadID uint, to entities.LeadStatus) (entities.Lead, error) {
	if leadID == 0 {
		return entities.Lead{}, ErrInvalidID
	}
	if to == entities.LeadStatusConverted {
		lead, err := u.getLead(ctx, leadID)
		if err != nil {
			return entities.Lead{}, err
		}
		if lead.Status == entities.LeadStatusConverted {
			return lead, nil
		}
		if _, err := u.ConvertLeadToClient(ctx, leadID); err != nil {
			return entities.Lead{}, err
		}
		return u.getLead(ctx, leadID)
	}

	var (
		result  entities.Lead
		from    entities.LeadStatus
		removed entities.Client
		changed bool
	)
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		lead, err := u.leads.GetByID(ctx, leadID)
		if err != nil {
			return err
		}
		if lead.ID == 0 {
			return ErrLeadNotFound
		}
		from = lead.Status
		if lead.Status == to {
			result = lead
			return nil
		}
		if err := flow.ValidateTransition(lead.Status, to); err != nil {
			return err
		}

		if lead.Status == entities.LeadStatusConverted || lead.Status == entities.LeadStatusQualified {
			if removed, err = u.deleteClientByLeadID(ctx, leadID); err != nil {
				return err
			}
		}

		result, err = u.leads.UpdateStatus(ctx, leadID, to)
		if err != nil {
			return err
		}
		if result.ID == 0 {
			return ErrLeadNotFound
		}
		changed = true
		return nil
	})
	if err != nil {
		u.observer.Transition(entities.ModuleLeads, err)
		log.Printf("[flow][usecase] lead status change failed lead_id=%d to=%s err=%v", leadID, to, err)
		return entities.Lead{}, err
	}
	if !changed {
		return result, nil
	}

	u.observer.Transition(entities.ModuleLeads, nil)
	u.observer.Record(ctx, statusChangeEvent(entities.ModuleLeads, leadID, string(from), string(to)))
	if removed.ID != 0 {
		u.recordUnconvert(ctx, leadID, removed.ID)
	}
	log.Printf("[flow][usecase] lead status changed lead_id=%d from=%s to=%s", leadID, from, to)
	return result, nil
}

func (u *LeadConversionUseCase) getLead(ctx context.Context, id uint) (entities.Lead, error) {
	l, err := u.leads.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == 0 {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadConversionUseCase) GetConversionStats(ctx context.Context) (LeadConversionStats, error) {
	counts, err := u.leads.CountByStatus(ctx)
	if err != nil {
		return LeadConversionStats{}, err
	}

	byStatus := make(map[string]int64, len(entities.LeadStatuses()))
	for _, s := range entities.LeadStatuses() {
		byStatus[string(s)] = 0
	}
	var total int64
	for status, n := range counts {
		byStatus[status] += n
		total += n
	}

	converted := byStatus[string(entities.LeadStatusConverted)]
	return LeadConversionStats{
		Total:          total,
		Converted:      converted,
		ByStatus:       byStatus,
		ConversionRate: rate(converted, total),
	}, nil
}

// rate is count as a percentage of total, 0 for an empty total.
func rate(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
