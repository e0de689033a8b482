package entities

import "time"

type ClientStatus string

const (
	ClientStatusProspective ClientStatus = "prospective"
	ClientStatusActive      ClientStatus = "active"
	ClientStatusInactive    ClientStatus = "inactive"
	ClientStatusVIP         ClientStatus = "vip"
)

var clientStatuses = []ClientStatus{ClientStatusProspective, ClientStatusActive, ClientStatusInactive, ClientStatusVIP}

func (ClientStatus) Module() Module { return ModuleClients }

func ClientStatuses() []ClientStatus { return append([]ClientStatus(nil), clientStatuses...) }

func ParseClientStatus(raw string) (ClientStatus, error) { return parseStatus(raw, clientStatuses) }

// Client is a customer account. LeadID is set when the client was produced by a
// lead conversion; at most one client references a given lead.
type Client struct {
	ID             uint         `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Address        string       `json:"address"`
	Status         ClientStatus `json:"status"`
	EstimatedValue float64      `json:"estimated_value"`
	Source         string       `json:"source"`
	Notes          string       `json:"notes"`
	AssignedTo     string       `json:"assigned_to"`
	LeadID         *uint        `json:"lead_id"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type ClientFilter struct {
	Status ClientStatus
}
