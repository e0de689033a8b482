package request

import (
	"testing"
	"time"

	"voltflow_crm/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
)

func TestRegisterValidators_LeadSource(t *testing.T) {
	if err := RegisterValidators(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := RegisterValidators(); err != nil {
		t.Fatalf("second registration failed: %v", err)
	}

	valid := LeadRequest{Name: "Ada", Source: "referral"}
	if err := binding.Validator.ValidateStruct(valid); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	noSource := LeadRequest{Name: "Ada"}
	if err := binding.Validator.ValidateStruct(noSource); err != nil {
		t.Fatalf("expected valid without source, got %v", err)
	}

	bad := LeadRequest{Name: "Ada", Source: "billboard"}
	if err := binding.Validator.ValidateStruct(bad); err == nil {
		t.Fatalf("expected lead_source failure")
	}

	src := "fax"
	if err := binding.Validator.ValidateStruct(LeadUpdateRequest{Source: &src}); err == nil {
		t.Fatalf("expected lead_source failure on update")
	}

	negative := -1.0
	if err := binding.Validator.ValidateStruct(LeadUpdateRequest{EstimatedValue: &negative}); err == nil {
		t.Fatalf("expected gte failure")
	}
}

func TestLeadRequest_ToEntity(t *testing.T) {
	l := LeadRequest{Name: "Ada", Source: "google", EstimatedValue: 10, Status: "contacted"}.ToEntity()
	if l.Source != entities.LeadSourceGoogle || l.Status != entities.LeadStatusContacted || l.EstimatedValue != 10 {
		t.Fatalf("unexpected lead: %+v", l)
	}

	src := "social"
	p := LeadUpdateRequest{Source: &src}.ToPatch()
	if p.Source == nil || *p.Source != entities.LeadSourceSocial {
		t.Fatalf("unexpected patch source: %v", p.Source)
	}
	if p.Name != nil {
		t.Fatalf("absent field should stay nil")
	}
}

func TestJobRequest(t *testing.T) {
	start := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	j := JobRequest{ClientID: 3, Title: "Install", Priority: "high", StartDate: &start}.ToEntity()
	if j.ClientID != 3 || j.Priority != entities.JobPriorityHigh || j.StartDate != &start {
		t.Fatalf("unexpected job: %+v", j)
	}
	if j.AssignedTechnicians == nil {
		t.Fatalf("expected empty technicians slice")
	}

	if err := binding.Validator.ValidateStruct(JobRequest{ClientID: 1, Title: "x", Priority: "urgent"}); err == nil {
		t.Fatalf("expected priority failure")
	}
	if err := binding.Validator.ValidateStruct(JobRequest{Title: "x"}); err == nil {
		t.Fatalf("expected client_id failure")
	}

	pr := "low"
	p := JobUpdateRequest{Priority: &pr}.ToPatch()
	if p.Priority == nil || *p.Priority != entities.JobPriorityLow {
		t.Fatalf("unexpected patch priority: %v", p.Priority)
	}
}

func TestQuoteAndInvoiceRequests(t *testing.T) {
	if err := binding.Validator.ValidateStruct(QuoteRequest{ClientID: 1, Amount: -5}); err == nil {
		t.Fatalf("expected amount failure")
	}

	jobID := uint(4)
	q := QuoteRequest{ClientID: 1, JobID: &jobID, Amount: 50, Terms: "Net 15"}.ToEntity()
	if q.JobID == nil || *q.JobID != 4 || q.Terms != "Net 15" || q.Status != "" {
		t.Fatalf("unexpected quote: %+v", q)
	}

	inv := InvoiceRequest{ClientID: 1, Amount: 20}.ToEntity()
	if !inv.DueDate.IsZero() {
		t.Fatalf("expected zero due date when absent")
	}
	due := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	inv = InvoiceRequest{ClientID: 1, Amount: 20, DueDate: &due}.ToEntity()
	if !inv.DueDate.Equal(due) {
		t.Fatalf("unexpected due date: %v", inv.DueDate)
	}

	amount := 12.5
	ip := InvoiceUpdateRequest{Amount: &amount}.ToPatch()
	if ip.Amount == nil || *ip.Amount != 12.5 || ip.DueDate != nil {
		t.Fatalf("unexpected invoice patch: %+v", ip)
	}
}
