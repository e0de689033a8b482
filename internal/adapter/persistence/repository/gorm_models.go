package repository

import (
	"time"

	"voltflow_crm/internal/domain/entities"
)

// Table models for the relational entity store. They stay separate from the
// domain entities so gorm tags and associations never leak past this package.

type leadRecord struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:255;not null"`
	Email          string `gorm:"size:255"`
	Phone          string `gorm:"size:50"`
	Source         string `gorm:"type:varchar(32);not null"`
	EstimatedValue float64
	Status         string `gorm:"type:varchar(32);not null;index"`
	Notes          string `gorm:"type:text"`
	AssignedTo     string `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (leadRecord) TableName() string { return "leads" }

type clientRecord struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:255;not null"`
	Email          string `gorm:"size:255"`
	Phone          string `gorm:"size:50"`
	Address        string `gorm:"type:text"`
	Status         string `gorm:"type:varchar(32);not null;index"`
	EstimatedValue float64
	Source         string      `gorm:"size:100"`
	Notes          string      `gorm:"type:text"`
	AssignedTo     string      `gorm:"size:255"`
	LeadID         *uint       `gorm:"uniqueIndex"` // at most one client per lead
	Lead           *leadRecord `gorm:"foreignKey:LeadID;constraint:OnDelete:SET NULL;"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (clientRecord) TableName() string { return "clients" }

type jobRecord struct {
	ID                  uint          `gorm:"primaryKey"`
	ClientID            uint          `gorm:"not null;index"`
	Client              *clientRecord `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE;"`
	Title               string        `gorm:"size:255;not null"`
	Description         string        `gorm:"type:text"`
	Status              string        `gorm:"type:varchar(32);not null;index"`
	Priority            string        `gorm:"type:varchar(16);not null"`
	Budget              float64
	StartDate           *time.Time
	EndDate             *time.Time
	AssignedTechnicians []string `gorm:"type:text;serializer:json"`
	ServiceAddress      string   `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (jobRecord) TableName() string { return "jobs" }

type quoteRecord struct {
	ID         uint          `gorm:"primaryKey"`
	ClientID   uint          `gorm:"not null;index"`
	Client     *clientRecord `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE;"`
	JobID      *uint         `gorm:"index"`
	Job        *jobRecord    `gorm:"foreignKey:JobID;constraint:OnDelete:SET NULL;"`
	Amount     float64       `gorm:"not null"`
	Status     string        `gorm:"type:varchar(32);not null;index"`
	ValidUntil *time.Time
	Terms      string `gorm:"type:text"`
	Notes      string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (quoteRecord) TableName() string { return "quotes" }

type invoiceRecord struct {
	ID           uint          `gorm:"primaryKey"`
	ClientID     uint          `gorm:"not null;index"`
	Client       *clientRecord `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE;"`
	JobID        *uint         `gorm:"index"`
	Job          *jobRecord    `gorm:"foreignKey:JobID;constraint:OnDelete:SET NULL;"`
	QuoteID      *uint         `gorm:"uniqueIndex"` // at most one invoice per quote
	Quote        *quoteRecord  `gorm:"foreignKey:QuoteID;constraint:OnDelete:SET NULL;"`
	Amount       float64       `gorm:"not null"`
	Status       string        `gorm:"type:varchar(32);not null;index"`
	DueDate      time.Time     `gorm:"not null;index"`
	PaymentTerms string        `gorm:"size:100"`
	Notes        string        `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (invoiceRecord) TableName() string { return "invoices" }

func toLeadRecord(l entities.Lead) leadRecord {
	return leadRecord{
		ID:             l.ID,
		Name:           l.Name,
		Email:          l.Email,
		Phone:          l.Phone,
		Source:         string(l.Source),
		EstimatedValue: l.EstimatedValue,
		Status:         string(l.Status),
		Notes:          l.Notes,
		AssignedTo:     l.AssignedTo,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func fromLeadRecord(r leadRecord) entities.Lead {
	return entities.Lead{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Source:         entities.LeadSource(r.Source),
		EstimatedValue: r.EstimatedValue,
		Status:         entities.LeadStatus(r.Status),
		Notes:          r.Notes,
		AssignedTo:     r.AssignedTo,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toClientRecord(c entities.Client) clientRecord {
	return clientRecord{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		Status:         string(c.Status),
		EstimatedValue: c.EstimatedValue,
		Source:         c.Source,
		Notes:          c.Notes,
		AssignedTo:     c.AssignedTo,
		LeadID:         c.LeadID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func fromClientRecord(r clientRecord) entities.Client {
	return entities.Client{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		Status:         entities.ClientStatus(r.Status),
		EstimatedValue: r.EstimatedValue,
		Source:         r.Source,
		Notes:          r.Notes,
		AssignedTo:     r.AssignedTo,
		LeadID:         r.LeadID,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toJobRecord(j entities.Job) jobRecord {
	return jobRecord{
		ID:                  j.ID,
		ClientID:            j.ClientID,
		Title:               j.Title,
		Description:         j.Description,
		Status:              string(j.Status),
		Priority:            string(j.Priority),
		Budget:              j.Budget,
		StartDate:           utcPtr(j.StartDate),
		EndDate:             utcPtr(j.EndDate),
		AssignedTechnicians: j.AssignedTechnicians,
		ServiceAddress:      j.ServiceAddress,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}
}

func fromJobRecord(r jobRecord) entities.Job {
	techs := r.AssignedTechnicians
	if techs == nil {
		techs = []string{}
	}
	return entities.Job{
		ID:                  r.ID,
		ClientID:            r.ClientID,
		Title:               r.Title,
		Description:         r.Description,
		Status:              entities.JobStatus(r.Status),
		Priority:            entities.JobPriority(r.Priority),
		Budget:              r.Budget,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		AssignedTechnicians: techs,
		ServiceAddress:      r.ServiceAddress,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func toQuoteRecord(q entities.Quote) quoteRecord {
	return quoteRecord{
		ID:         q.ID,
		ClientID:   q.ClientID,
		JobID:      q.JobID,
		Amount:     q.Amount,
		Status:     string(q.Status),
		ValidUntil: utcPtr(q.ValidUntil),
		Terms:      q.Terms,
		Notes:      q.Notes,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func fromQuoteRecord(r quoteRecord) entities.Quote {
	return entities.Quote{
		ID:         r.ID,
		ClientID:   r.ClientID,
		JobID:      r.JobID,
		Amount:     r.Amount,
		Status:     entities.QuoteStatus(r.Status),
		ValidUntil: r.ValidUntil,
		Terms:      r.Terms,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toInvoiceRecord(i entities.Invoice) invoiceRecord {
	return invoiceRecord{
		ID:           i.ID,
		ClientID:     i.ClientID,
		JobID:        i.JobID,
		QuoteID:      i.QuoteID,
		Amount:       i.Amount,
		Status:       string(i.Status),
		DueDate:      i.DueDate.UTC(),
		PaymentTerms: i.PaymentTerms,
		Notes:        i.Notes,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func fromInvoiceRecord(r invoiceRecord) entities.Invoice {
	return entities.Invoice{
		ID:           r.ID,
		ClientID:     r.ClientID,
		JobID:        r.JobID,
		QuoteID:      r.QuoteID,
		Amount:       r.Amount,
		Status:       entities.InvoiceStatus(r.Status),
		DueDate:      r.DueDate,
		PaymentTerms: r.PaymentTerms,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
