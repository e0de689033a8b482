package entities

import "time"

// LeadStatus is the lifecycle of a lead.
//
// The simplified set used day to day is new/contacted/qualified/lost; the
// remaining statuses model the longer sales cycle. "converted" is only ever set
// by the lead → client conversion.
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "new"
	LeadStatusContacted    LeadStatus = "contacted"
	LeadStatusQualified    LeadStatus = "qualified"
	LeadStatusProposalSent LeadStatus = "proposal_sent"
	LeadStatusNegotiation  LeadStatus = "negotiation"
	LeadStatusOnHold       LeadStatus = "on_hold"
	LeadStatusConverted    LeadStatus = "converted"
	LeadStatusLost         LeadStatus = "lost"
)

var leadStatuses = []LeadStatus{
	LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusProposalSent,
	LeadStatusNegotiation, LeadStatusOnHold, LeadStatusConverted, LeadStatusLost,
}

func (LeadStatus) Module() Module { return ModuleLeads }

func LeadStatuses() []LeadStatus { return append([]LeadStatus(nil), leadStatuses...) }

func ParseLeadStatus(raw string) (LeadStatus, error) { return parseStatus(raw, leadStatuses) }

type LeadSource string

const (
	LeadSourceWebsite  LeadSource = "website"
	LeadSourceReferral LeadSource = "referral"
	LeadSourceGoogle   LeadSource = "google"
	LeadSourceSocial   LeadSource = "social"
	LeadSourceOther    LeadSource = "other"
)

var leadSources = []LeadSource{LeadSourceWebsite, LeadSourceReferral, LeadSourceGoogle, LeadSourceSocial, LeadSourceOther}

func IsValidLeadSource(raw string) bool {
	_, err := parseStatus(raw, leadSources)
	return err == nil
}

// Lead is a prospective customer persisted in the leads table.
type Lead struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Source         LeadSource `json:"source"`
	EstimatedValue float64    `json:"estimated_value"`
	Status         LeadStatus `json:"status"`
	Notes          string     `json:"notes"`
	AssignedTo     string     `json:"assigned_to"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type LeadFilter struct {
	Status LeadStatus
}
