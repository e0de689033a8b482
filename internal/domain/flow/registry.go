// Package flow holds the pipeline state machine: which statuses exist per
// module, which transitions between them are legal and which follow-up actions
// each status offers.
//
// The tables are immutable; every accessor hands out copies.
package flow

import "voltflow_crm/internal/domain/entities"

// Status is implemented by every per-module status type.
type Status interface {
	~string
	Module() entities.Module
}

// StageDescriptor describes one status of a module.
type StageDescriptor struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	AllowedTransitions []string `json:"allowed_transitions"`
	RequiredFields     []string `json:"required_fields"`
	Color              string   `json:"color"`
	Icon               string   `json:"icon"`
}

// Terminal reports whether no transition leaves this stage.
func (d StageDescriptor) Terminal() bool {
	return len(d.AllowedTransitions) == 0
}

func (d StageDescriptor) clone() StageDescriptor {
	d.AllowedTransitions = append([]string{}, d.AllowedTransitions...)
	d.RequiredFields = append([]string{}, d.RequiredFields...)
	return d
}

type stage struct {
	name        string
	description string
	next        []string
	required    []string
	color       string
	icon        string
}

type moduleTable struct {
	order  []string
	stages map[string]stage
}

func newTable[S Status](order []S, stages map[S]stage) moduleTable {
	t := moduleTable{order: make([]string, 0, len(order)), stages: make(map[string]stage, len(stages))}
	for _, s := range order {
		t.order = append(t.order, string(s))
	}
	for s, st := range stages {
		t.stages[string(s)] = st
	}
	return t
}

func ids[S ~string](statuses ...S) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

var registry = map[entities.Module]moduleTable{
	entities.ModuleLeads:    newTable(entities.LeadStatuses(), leadStages),
	entities.ModuleClients:  newTable(entities.ClientStatuses(), clientStages),
	entities.ModuleJobs:     newTable(entities.JobStatuses(), jobStages),
	entities.ModuleQuotes:   newTable(entities.QuoteStatuses(), quoteStages),
	entities.ModuleInvoices: newTable(entities.InvoiceStatuses(), invoiceStages),
}

var leadStages = map[entities.LeadStatus]stage{
	entities.LeadStatusNew: {
		name:        "New Lead",
		description: "Recently received lead requiring initial contact",
		next:        ids(entities.LeadStatusContacted, entities.LeadStatusQualified, entities.LeadStatusOnHold, entities.LeadStatusLost),
		required:    []string{"name", "phone", "estimated_value"},
		color:       "bg-blue-100 text-blue-700",
		icon:        "UserPlus",
	},
	entities.LeadStatusContacted: {
		name:        "Contacted",
		description: "Lead has been contacted, awaiting response",
		next:        ids(entities.LeadStatusQualified, entities.LeadStatusProposalSent, entities.LeadStatusOnHold, entities.LeadStatusLost),
		required:    []string{"name", "phone", "estimated_value", "notes"},
		color:       "bg-sky-100 text-sky-700",
		icon:        "Phone",
	},
	entities.LeadStatusQualified: {
		name:        "Qualified",
		description: "Lead meets criteria and is ready for proposal",
		next:        ids(entities.LeadStatusProposalSent, entities.LeadStatusConverted, entities.LeadStatusContacted, entities.LeadStatusLost),
		required:    []string{"name", "phone", "estimated_value", "notes"},
		color:       "bg-green-100 text-green-700",
		icon:        "CheckCircle",
	},
	entities.LeadStatusProposalSent: {
		name:        "Proposal Sent",
		description: "Quote has been sent to potential client",
		next:        ids(entities.LeadStatusNegotiation, entities.LeadStatusConverted, entities.LeadStatusLost),
		required:    []string{"name", "phone", "estimated_value"},
		color:       "bg-indigo-100 text-indigo-700",
		icon:        "FileText",
	},
	entities.LeadStatusNegotiation: {
		name:        "Negotiation",
		description: "In active negotiation with potential client",
		next:        ids(entities.LeadStatusConverted, entities.LeadStatusOnHold, entities.LeadStatusLost),
		required:    []string{"name", "phone", "estimated_value", "notes"},
		color:       "bg-yellow-100 text-yellow-700",
		icon:        "MessageSquare",
	},
	entities.LeadStatusOnHold: {
		name:        "On Hold",
		description: "Temporarily paused for future follow-up",
		next:        ids(entities.LeadStatusContacted, entities.LeadStatusQualified, entities.LeadStatusLost),
		required:    []string{"name", "phone", "estimated_value"},
		color:       "bg-gray-100 text-gray-700",
		icon:        "Pause",
	},
	entities.LeadStatusConverted: {
		name:        "Converted",
		description: "Successfully converted to client",
		next:        ids(entities.LeadStatusQualified, entities.LeadStatusContacted, entities.LeadStatusLost),
		required:    []string{"name", "phone", "estimated_value"},
		color:       "bg-green-100 text-green-700",
		icon:        "Trophy",
	},
	entities.LeadStatusLost: {
		name:        "Lost",
		description: "Did not convert to client",
		required:    []string{"name", "phone", "estimated_value"},
		color:       "bg-red-100 text-red-700",
		icon:        "XCircle",
	},
}

var clientStages = map[entities.ClientStatus]stage{
	entities.ClientStatusProspective: {
		name:        "Prospective",
		description: "New client, no completed jobs yet",
		next:        ids(entities.ClientStatusActive, entities.ClientStatusInactive),
		required:    []string{"name", "phone", "address"},
		color:       "bg-blue-100 text-blue-700",
		icon:        "UserCheck",
	},
	entities.ClientStatusActive: {
		name:        "Active",
		description: "Client with completed or ongoing jobs",
		next:        ids(entities.ClientStatusInactive, entities.ClientStatusVIP),
		required:    []string{"name", "phone", "address"},
		color:       "bg-green-100 text-green-700",
		icon:        "Users",
	},
	entities.ClientStatusInactive: {
		name:        "Inactive",
		description: "No recent activity or jobs",
		next:        ids(entities.ClientStatusActive, entities.ClientStatusProspective),
		required:    []string{"name", "phone", "address"},
		color:       "bg-gray-100 text-gray-700",
		icon:        "UserX",
	},
	entities.ClientStatusVIP: {
		name:        "VIP",
		description: "High-value client requiring priority service",
		next:        ids(entities.ClientStatusActive, entities.ClientStatusInactive),
		required:    []string{"name", "phone", "address", "notes"},
		color:       "bg-purple-100 text-purple-700",
		icon:        "Crown",
	},
}

var jobStages = map[entities.JobStatus]stage{
	entities.JobStatusPending: {
		name:        "Pending",
		description: "Job created, not yet scheduled",
		next:        ids(entities.JobStatusScheduled, entities.JobStatusInProgress, entities.JobStatusCancelled),
		required:    []string{"client_id", "title"},
		color:       "bg-yellow-100 text-yellow-700",
		icon:        "Clock",
	},
	entities.JobStatusScheduled: {
		name:        "Scheduled",
		description: "Job scheduled with technician assigned",
		next:        ids(entities.JobStatusDispatched, entities.JobStatusInProgress, entities.JobStatusOnHold, entities.JobStatusCancelled),
		required:    []string{"client_id", "start_date", "assigned_technicians", "description"},
		color:       "bg-blue-100 text-blue-700",
		icon:        "Calendar",
	},
	entities.JobStatusDispatched: {
		name:        "Dispatched",
		description: "Technician en route to job site",
		next:        ids(entities.JobStatusInProgress, entities.JobStatusCancelled),
		required:    []string{"client_id", "start_date", "assigned_technicians"},
		color:       "bg-teal-100 text-teal-700",
		icon:        "Truck",
	},
	entities.JobStatusInProgress: {
		name:        "In Progress",
		description: "Work is currently being performed",
		next:        ids(entities.JobStatusCompleted, entities.JobStatusOnHold, entities.JobStatusCancelled),
		required:    []string{"client_id", "start_date", "assigned_technicians"},
		color:       "bg-yellow-100 text-yellow-700",
		icon:        "Wrench",
	},
	entities.JobStatusOnHold: {
		name:        "On Hold",
		description: "Job temporarily paused",
		next:        ids(entities.JobStatusScheduled, entities.JobStatusInProgress, entities.JobStatusCancelled),
		required:    []string{"client_id", "start_date", "assigned_technicians"},
		color:       "bg-gray-100 text-gray-700",
		icon:        "Pause",
	},
	entities.JobStatusCompleted: {
		name:        "Completed",
		description: "Work finished, awaiting invoice generation",
		required:    []string{"client_id", "start_date", "end_date", "assigned_technicians"},
		color:       "bg-green-100 text-green-700",
		icon:        "CheckCircle",
	},
	entities.JobStatusCancelled: {
		name:        "Cancelled",
		description: "Job was cancelled",
		required:    []string{"client_id"},
		color:       "bg-red-100 text-red-700",
		icon:        "XCircle",
	},
}

var quoteStages = map[entities.QuoteStatus]stage{
	entities.QuoteStatusDraft: {
		name:        "Draft",
		description: "Quote being prepared",
		next:        ids(entities.QuoteStatusSent),
		required:    []string{"client_id", "amount"},
		color:       "bg-gray-100 text-gray-700",
		icon:        "Edit",
	},
	entities.QuoteStatusSent: {
		name:        "Sent",
		description: "Quote sent to client",
		next:        ids(entities.QuoteStatusReviewed, entities.QuoteStatusAccepted, entities.QuoteStatusRejected, entities.QuoteStatusExpired, entities.QuoteStatusRevised),
		required:    []string{"client_id", "amount", "valid_until"},
		color:       "bg-blue-100 text-blue-700",
		icon:        "Send",
	},
	entities.QuoteStatusReviewed: {
		name:        "Reviewed",
		description: "Client has viewed the quote",
		next:        ids(entities.QuoteStatusAccepted, entities.QuoteStatusRejected, entities.QuoteStatusExpired, entities.QuoteStatusRevised),
		required:    []string{"client_id", "amount", "valid_until"},
		color:       "bg-yellow-100 text-yellow-700",
		icon:        "Eye",
	},
	entities.QuoteStatusAccepted: {
		name:        "Accepted",
		description: "Quote approved by client",
		required:    []string{"client_id", "amount"},
		color:       "bg-green-100 text-green-700",
		icon:        "CheckCircle",
	},
	entities.QuoteStatusRejected: {
		name:        "Rejected",
		description: "Quote rejected by client",
		next:        ids(entities.QuoteStatusRevised),
		required:    []string{"client_id", "amount", "notes"},
		color:       "bg-red-100 text-red-700",
		icon:        "XCircle",
	},
	entities.QuoteStatusExpired: {
		name:        "Expired",
		description: "Quote validity period has passed",
		next:        ids(entities.QuoteStatusRevised),
		required:    []string{"client_id", "amount", "valid_until"},
		color:       "bg-gray-100 text-gray-700",
		icon:        "Clock",
	},
	entities.QuoteStatusRevised: {
		name:        "Revised",
		description: "Quote has been updated",
		next:        ids(entities.QuoteStatusSent),
		required:    []string{"client_id", "amount", "notes"},
		color:       "bg-orange-100 text-orange-700",
		icon:        "RefreshCw",
	},
}

var invoiceStages = map[entities.InvoiceStatus]stage{
	entities.InvoiceStatusDraft: {
		name:        "Draft",
		description: "Invoice being prepared",
		next:        ids(entities.InvoiceStatusSent, entities.InvoiceStatusCancelled),
		required:    []string{"client_id", "amount", "due_date"},
		color:       "bg-gray-100 text-gray-700",
		icon:        "Edit",
	},
	entities.InvoiceStatusSent: {
		name:        "Sent",
		description: "Invoice sent to client",
		next:        ids(entities.InvoiceStatusViewed, entities.InvoiceStatusPaid, entities.InvoiceStatusOverdue, entities.InvoiceStatusCancelled),
		required:    []string{"client_id", "amount", "due_date"},
		color:       "bg-blue-100 text-blue-700",
		icon:        "Send",
	},
	entities.InvoiceStatusViewed: {
		name:        "Viewed",
		description: "Client has viewed the invoice",
		next:        ids(entities.InvoiceStatusPaid, entities.InvoiceStatusDisputed, entities.InvoiceStatusOverdue),
		required:    []string{"client_id", "amount", "due_date"},
		color:       "bg-yellow-100 text-yellow-700",
		icon:        "Eye",
	},
	entities.InvoiceStatusPaid: {
		name:        "Paid",
		description: "Invoice has been paid in full",
		required:    []string{"client_id", "amount"},
		color:       "bg-green-100 text-green-700",
		icon:        "CheckCircle",
	},
	entities.InvoiceStatusOverdue: {
		name:        "Overdue",
		description: "Invoice payment is past due",
		next:        ids(entities.InvoiceStatusPaid, entities.InvoiceStatusDisputed, entities.InvoiceStatusCancelled),
		required:    []string{"client_id", "amount", "due_date"},
		color:       "bg-red-100 text-red-700",
		icon:        "AlertTriangle",
	},
	entities.InvoiceStatusDisputed: {
		name:        "Disputed",
		description: "Client has disputed the invoice",
		next:        ids(entities.InvoiceStatusPaid, entities.InvoiceStatusCancelled),
		required:    []string{"client_id", "amount", "notes"},
		color:       "bg-orange-100 text-orange-700",
		icon:        "MessageSquare",
	},
	entities.InvoiceStatusCancelled: {
		name:        "Cancelled",
		description: "Invoice has been cancelled",
		required:    []string{"client_id", "amount", "notes"},
		color:       "bg-gray-100 text-gray-700",
		icon:        "XCircle",
	},
}

func describe(id string, st stage) StageDescriptor {
	return StageDescriptor{
		ID:                 id,
		Name:               st.name,
		Description:        st.description,
		AllowedTransitions: st.next,
		RequiredFields:     st.required,
		Color:              st.color,
		Icon:               st.icon,
	}.clone()
}

// GetStageInfo looks a stage up by raw module and status strings. Unknown
// modules and statuses report false; matching is exact and case-sensitive.
func GetStageInfo(module entities.Module, status string) (StageDescriptor, bool) {
	t, ok := registry[module]
	if !ok {
		return StageDescriptor{}, false
	}
	st, ok := t.stages[status]
	if !ok {
		return StageDescriptor{}, false
	}
	return describe(status, st), true
}

// Stage is the typed form of GetStageInfo.
func Stage[S Status](s S) (StageDescriptor, bool) {
	return GetStageInfo(s.Module(), string(s))
}

// Stages returns the descriptors of a module in declaration order.
func Stages(module entities.Module) []StageDescriptor {
	t, ok := registry[module]
	if !ok {
		return nil
	}
	out := make([]StageDescriptor, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, describe(id, t.stages[id]))
	}
	return out
}

// StatusColor is the badge colour for a status, with a neutral fallback.
func StatusColor(module entities.Module, status string) string {
	if d, ok := GetStageInfo(module, status); ok {
		return d.Color
	}
	return "bg-gray-100 text-gray-700"
}
