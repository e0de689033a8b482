package flow

import "voltflow_crm/internal/domain/entities"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ActionKind tells the caller what firing an action does.
type ActionKind string

const (
	// ActionStatusUpdate writes TargetStatus through the transition validator.
	ActionStatusUpdate ActionKind = "status_update"
	// ActionConversion runs the conversion named by Conversion.
	ActionConversion ActionKind = "conversion"
	// ActionCreate opens a creation form prefilled from the current record.
	ActionCreate ActionKind = "create"
)

type Conversion string

const (
	ConversionLeadToClient   Conversion = "lead_to_client"
	ConversionQuoteToInvoice Conversion = "quote_to_invoice"
)

// ActionDescriptor is a user-facing next step for a record in a given status.
type ActionDescriptor struct {
	ID                 string     `json:"id"`
	Label              string     `json:"label"`
	Action             string     `json:"action"`
	Priority           Priority   `json:"priority"`
	Kind               ActionKind `json:"kind"`
	Icon               string     `json:"icon"`
	TargetModule       string     `json:"target_module,omitempty"`
	TargetStatus       string     `json:"target_status,omitempty"`
	TriggersConversion bool       `json:"triggers_conversion"`
	Conversion         Conversion `json:"conversion,omitempty"`
}

type actionKey struct {
	module entities.Module
	status string
}

func statusUpdate(id, label string, to string, p Priority, icon string) ActionDescriptor {
	return ActionDescriptor{ID: id, Label: label, Action: "updateStatus", Priority: p, Kind: ActionStatusUpdate, Icon: icon, TargetStatus: to}
}

func create(id, label, action string, target entities.Module, p Priority, icon string) ActionDescriptor {
	return ActionDescriptor{ID: id, Label: label, Action: action, Priority: p, Kind: ActionCreate, Icon: icon, TargetModule: string(target)}
}

var (
	convertToClient = ActionDescriptor{
		ID:                 "convert-to-client",
		Label:              "Convert to Client",
		Action:             "convertToClient",
		Priority:           PriorityHigh,
		Kind:               ActionConversion,
		Icon:               "UserPlus",
		TargetModule:       string(entities.ModuleClients),
		TargetStatus:       string(entities.LeadStatusConverted),
		TriggersConversion: true,
		Conversion:         ConversionLeadToClient,
	}
	convertToInvoice = ActionDescriptor{
		ID:                 "create-invoice",
		Label:              "Create Invoice",
		Action:             "convertToInvoice",
		Priority:           PriorityHigh,
		Kind:               ActionConversion,
		Icon:               "Receipt",
		TargetModule:       string(entities.ModuleInvoices),
		TargetStatus:       string(entities.QuoteStatusAccepted),
		TriggersConversion: true,
		Conversion:         ConversionQuoteToInvoice,
	}
	createQuote     = create("create-quote", "Create Quote", "createQuote", entities.ModuleQuotes, PriorityMedium, "FileText")
	createJob       = create("create-job", "Create Job", "createJob", entities.ModuleJobs, PriorityHigh, "Briefcase")
	generateInvoice = create("generate-invoice", "Generate Invoice", "generateInvoice", entities.ModuleInvoices, PriorityHigh, "Receipt")
	recordPayment   = statusUpdate("record-payment", "Record Payment", string(entities.InvoiceStatusPaid), PriorityHigh, "CreditCard")
)

var actionTable = map[actionKey][]ActionDescriptor{
	{entities.ModuleLeads, string(entities.LeadStatusNew)}: {
		statusUpdate("mark-contacted", "Mark Contacted", string(entities.LeadStatusContacted), PriorityHigh, "Phone"),
		statusUpdate("mark-lost", "Mark Lost", string(entities.LeadStatusLost), PriorityLow, "XCircle"),
	},
	{entities.ModuleLeads, string(entities.LeadStatusContacted)}: {
		statusUpdate("mark-qualified", "Mark Qualified", string(entities.LeadStatusQualified), PriorityHigh, "CheckCircle"),
		statusUpdate("put-on-hold", "Put On Hold", string(entities.LeadStatusOnHold), PriorityLow, "Pause"),
	},
	{entities.ModuleLeads, string(entities.LeadStatusQualified)}:   {convertToClient},
	{entities.ModuleLeads, string(entities.LeadStatusNegotiation)}: {convertToClient},
	{entities.ModuleLeads, string(entities.LeadStatusOnHold)}: {
		statusUpdate("resume-contact", "Resume Contact", string(entities.LeadStatusContacted), PriorityMedium, "Phone"),
	},

	{entities.ModuleClients, string(entities.ClientStatusProspective)}: {createQuote},
	{entities.ModuleClients, string(entities.ClientStatusActive)}:      {createQuote, createJob},
	{entities.ModuleClients, string(entities.ClientStatusInactive)}: {
		statusUpdate("reactivate-client", "Reactivate", string(entities.ClientStatusActive), PriorityLow, "UserCheck"),
	},

	{entities.ModuleQuotes, string(entities.QuoteStatusDraft)}: {
		statusUpdate("send-quote", "Send Quote", string(entities.QuoteStatusSent), PriorityHigh, "Send"),
	},
	{entities.ModuleQuotes, string(entities.QuoteStatusSent)}: {
		statusUpdate("mark-accepted", "Mark Accepted", string(entities.QuoteStatusAccepted), PriorityHigh, "CheckCircle"),
		convertToInvoice,
	},
	{entities.ModuleQuotes, string(entities.QuoteStatusReviewed)}: {
		statusUpdate("mark-accepted", "Mark Accepted", string(entities.QuoteStatusAccepted), PriorityHigh, "CheckCircle"),
		convertToInvoice,
	},
	{entities.ModuleQuotes, string(entities.QuoteStatusAccepted)}: {createJob, convertToInvoice},
	{entities.ModuleQuotes, string(entities.QuoteStatusRejected)}: {
		statusUpdate("revise-quote", "Revise Quote", string(entities.QuoteStatusRevised), PriorityMedium, "RefreshCw"),
	},
	{entities.ModuleQuotes, string(entities.QuoteStatusExpired)}: {
		statusUpdate("revise-quote", "Revise Quote", string(entities.QuoteStatusRevised), PriorityMedium, "RefreshCw"),
	},

	{entities.ModuleJobs, string(entities.JobStatusPending)}: {
		statusUpdate("schedule-job", "Schedule", string(entities.JobStatusScheduled), PriorityHigh, "Calendar"),
	},
	{entities.ModuleJobs, string(entities.JobStatusScheduled)}: {
		statusUpdate("dispatch-job", "Dispatch", string(entities.JobStatusDispatched), PriorityMedium, "Truck"),
	},
	{entities.ModuleJobs, string(entities.JobStatusDispatched)}: {
		statusUpdate("start-job", "Start Work", string(entities.JobStatusInProgress), PriorityHigh, "Wrench"),
	},
	{entities.ModuleJobs, string(entities.JobStatusInProgress)}: {
		statusUpdate("complete-job", "Mark Completed", string(entities.JobStatusCompleted), PriorityHigh, "CheckCircle"),
	},
	{entities.ModuleJobs, string(entities.JobStatusCompleted)}: {generateInvoice},

	{entities.ModuleInvoices, string(entities.InvoiceStatusDraft)}: {
		statusUpdate("send-invoice", "Send Invoice", string(entities.InvoiceStatusSent), PriorityHigh, "Send"),
	},
	{entities.ModuleInvoices, string(entities.InvoiceStatusSent)}:    {recordPayment},
	{entities.ModuleInvoices, string(entities.InvoiceStatusViewed)}:  {recordPayment},
	{entities.ModuleInvoices, string(entities.InvoiceStatusOverdue)}: {recordPayment},
}

// NextActions lists the follow-up actions for a record. Unknown module/status
// pairs yield an empty list.
func NextActions(module entities.Module, status string) []ActionDescriptor {
	src := actionTable[actionKey{module: module, status: status}]
	out := make([]ActionDescriptor, len(src))
	copy(out, src)
	return out
}

// NextActionsFor is the typed form of NextActions.
func NextActionsFor[S Status](s S) []ActionDescriptor {
	return NextActions(s.Module(), string(s))
}
