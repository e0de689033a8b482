package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/usecase/interfaces"

	"github.com/stretchr/testify/require"
)

func seedClient(t *testing.T, repo *ClientGormRepository, name string) entities.Client {
	t.Helper()
	c, err := repo.Create(context.Background(), entities.Client{Name: name, Status: entities.ClientStatusActive})
	require.NoError(t, err)
	return c
}

func TestLeadGormRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		repo := NewLeadGormRepository(newTestDB(t))
		created, err := repo.Create(ctx, entities.Lead{
			Name: "Ada", Email: "ada@example.com", Source: entities.LeadSourceReferral,
			EstimatedValue: 2500, Status: entities.LeadStatusNew,
		})
		require.NoError(t, err)
		require.NotZero(t, created.ID)
		require.False(t, created.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "Ada", got.Name)
		require.Equal(t, entities.LeadSourceReferral, got.Source)
		require.Equal(t, 2500.0, got.EstimatedValue)
	})

	t.Run("missing id returns zero value", func(t *testing.T) {
		repo := NewLeadGormRepository(newTestDB(t))
		got, err := repo.GetByID(ctx, 404)
		require.NoError(t, err)
		require.Zero(t, got.ID)

		updated, err := repo.UpdateStatus(ctx, 404, entities.LeadStatusLost)
		require.NoError(t, err)
		require.Zero(t, updated.ID)

		deleted, err := repo.Delete(ctx, 404)
		require.NoError(t, err)
		require.False(t, deleted)
	})

	t.Run("list filters by status", func(t *testing.T) {
		repo := NewLeadGormRepository(newTestDB(t))
		for _, s := range []entities.LeadStatus{entities.LeadStatusNew, entities.LeadStatusQualified, entities.LeadStatusNew} {
			_, err := repo.Create(ctx, entities.Lead{Name: "x", Source: entities.LeadSourceOther, Status: s})
			require.NoError(t, err)
		}
		all, err := repo.List(ctx, entities.LeadFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Greater(t, all[0].ID, all[2].ID)

		fresh, err := repo.List(ctx, entities.LeadFilter{Status: entities.LeadStatusNew})
		require.NoError(t, err)
		require.Len(t, fresh, 2)
	})

	t.Run("update keeps status", func(t *testing.T) {
		repo := NewLeadGormRepository(newTestDB(t))
		l, err := repo.Create(ctx, entities.Lead{Name: "old", Source: entities.LeadSourceOther, Status: entities.LeadStatusContacted})
		require.NoError(t, err)

		l.Name = "new"
		l.Notes = ""
		l.Status = entities.LeadStatusLost
		got, err := repo.Update(ctx, l)
		require.NoError(t, err)
		require.Equal(t, "new", got.Name)
		require.Equal(t, entities.LeadStatusContacted, got.Status)
	})

	t.Run("count by status", func(t *testing.T) {
		repo := NewLeadGormRepository(newTestDB(t))
		for _, s := range []entities.LeadStatus{entities.LeadStatusNew, entities.LeadStatusConverted, entities.LeadStatusConverted} {
			_, err := repo.Create(ctx, entities.Lead{Name: "x", Source: entities.LeadSourceOther, Status: s})
			require.NoError(t, err)
		}
		counts, err := repo.CountByStatus(ctx)
		require.NoError(t, err)
		require.Equal(t, map[string]int64{"new": 1, "converted": 2}, counts)
	})
}

func TestClientGormRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("one client per lead", func(t *testing.T) {
		db := newTestDB(t)
		leads := NewLeadGormRepository(db)
		clients := NewClientGormRepository(db)

		lead, err := leads.Create(ctx, entities.Lead{Name: "L", Source: entities.LeadSourceOther, Status: entities.LeadStatusQualified})
		require.NoError(t, err)
		leadID := lead.ID

		first, err := clients.Create(ctx, entities.Client{Name: "C", Status: entities.ClientStatusProspective, LeadID: &leadID})
		require.NoError(t, err)

		_, err = clients.Create(ctx, entities.Client{Name: "C2", Status: entities.ClientStatusProspective, LeadID: &leadID})
		require.Error(t, err)
		require.True(t, errors.Is(err, interfaces.ErrConflict), "got %v", err)

		byLead, err := clients.GetByLeadID(ctx, leadID)
		require.NoError(t, err)
		require.Equal(t, first.ID, byLead.ID)

		none, err := clients.GetByLeadID(ctx, leadID+100)
		require.NoError(t, err)
		require.Zero(t, none.ID)
	})

	t.Run("deleting the lead detaches the client", func(t *testing.T) {
		db := newTestDB(t)
		leads := NewLeadGormRepository(db)
		clients := NewClientGormRepository(db)

		lead, err := leads.Create(ctx, entities.Lead{Name: "L", Source: entities.LeadSourceOther, Status: entities.LeadStatusQualified})
		require.NoError(t, err)
		leadID := lead.ID
		c, err := clients.Create(ctx, entities.Client{Name: "C", Status: entities.ClientStatusProspective, LeadID: &leadID})
		require.NoError(t, err)

		ok, err := leads.Delete(ctx, leadID)
		require.NoError(t, err)
		require.True(t, ok)

		got, err := clients.GetByID(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, c.ID, got.ID)
		require.Nil(t, got.LeadID)
	})

	t.Run("status update and delete", func(t *testing.T) {
		clients := NewClientGormRepository(newTestDB(t))
		c := seedClient(t, clients, "C")

		got, err := clients.UpdateStatus(ctx, c.ID, entities.ClientStatusVIP)
		require.NoError(t, err)
		require.Equal(t, entities.ClientStatusVIP, got.Status)

		ok, err := clients.Delete(ctx, c.ID)
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = clients.Delete(ctx, c.ID)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestJobGormRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	clients := NewClientGormRepository(db)
	jobs := NewJobGormRepository(db)

	c1 := seedClient(t, clients, "one")
	c2 := seedClient(t, clients, "two")
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	j, err := jobs.Create(ctx, entities.Job{
		ClientID: c1.ID, Title: "Panel upgrade", Status: entities.JobStatusPending,
		Priority: entities.JobPriorityHigh, StartDate: &start,
		AssignedTechnicians: []string{"sam", "kai"},
	})
	require.NoError(t, err)
	_, err = jobs.Create(ctx, entities.Job{ClientID: c2.ID, Title: "Rewire", Status: entities.JobStatusScheduled, Priority: entities.JobPriorityLow})
	require.NoError(t, err)

	got, err := jobs.GetByID(ctx, j.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"sam", "kai"}, got.AssignedTechnicians)
	require.NotNil(t, got.StartDate)
	require.True(t, start.Equal(*got.StartDate))
	require.Nil(t, got.EndDate)

	byClient, err := jobs.List(ctx, entities.JobFilter{ClientID: c1.ID})
	require.NoError(t, err)
	require.Len(t, byClient, 1)

	scheduled, err := jobs.List(ctx, entities.JobFilter{Status: entities.JobStatusScheduled})
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	require.Equal(t, c2.ID, scheduled[0].ClientID)

	t.Run("jobs go with their client", func(t *testing.T) {
		ok, err := clients.Delete(ctx, c1.ID)
		require.NoError(t, err)
		require.True(t, ok)

		gone, err := jobs.GetByID(ctx, j.ID)
		require.NoError(t, err)
		require.Zero(t, gone.ID)
	})
}

func TestQuoteGormRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	clients := NewClientGormRepository(db)
	quotes := NewQuoteGormRepository(db)
	c := seedClient(t, clients, "C")

	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	stale, err := quotes.Create(ctx, entities.Quote{ClientID: c.ID, Amount: 100, Status: entities.QuoteStatusSent, ValidUntil: &past})
	require.NoError(t, err)
	_, err = quotes.Create(ctx, entities.Quote{ClientID: c.ID, Amount: 200, Status: entities.QuoteStatusSent, ValidUntil: &future})
	require.NoError(t, err)
	_, err = quotes.Create(ctx, entities.Quote{ClientID: c.ID, Amount: 300, Status: entities.QuoteStatusDraft, ValidUntil: &past})
	require.NoError(t, err)
	_, err = quotes.Create(ctx, entities.Quote{ClientID: c.ID, Amount: 400, Status: entities.QuoteStatusReviewed})
	require.NoError(t, err)

	expiring, err := quotes.ListValidUntilBefore(ctx, now, []entities.QuoteStatus{entities.QuoteStatusSent, entities.QuoteStatusReviewed})
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	require.Equal(t, stale.ID, expiring[0].ID)

	empty, err := quotes.ListValidUntilBefore(ctx, now, nil)
	require.NoError(t, err)
	require.Empty(t, empty)

	counts, err := quotes.CountByStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"sent": 2, "draft": 1, "reviewed": 1}, counts)

	stale.Amount = 150
	stale.Terms = "Net 15"
	updated, err := quotes.Update(ctx, stale)
	require.NoError(t, err)
	require.Equal(t, 150.0, updated.Amount)
	require.Equal(t, "Net 15", updated.Terms)
	require.Equal(t, entities.QuoteStatusSent, updated.Status)

	// conditional write only applies while the row holds the expected status
	moved, err := quotes.UpdateStatusFrom(ctx, stale.ID, entities.QuoteStatusReviewed, entities.QuoteStatusExpired)
	require.NoError(t, err)
	require.Zero(t, moved.ID)
	moved, err = quotes.UpdateStatusFrom(ctx, stale.ID, entities.QuoteStatusSent, entities.QuoteStatusExpired)
	require.NoError(t, err)
	require.Equal(t, entities.QuoteStatusExpired, moved.Status)
}

func TestInvoiceGormRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	clients := NewClientGormRepository(db)
	quotes := NewQuoteGormRepository(db)
	invoices := NewInvoiceGormRepository(db)
	c := seedClient(t, clients, "C")

	q, err := quotes.Create(ctx, entities.Quote{ClientID: c.ID, Amount: 900, Status: entities.QuoteStatusAccepted})
	require.NoError(t, err)
	quoteID := q.ID

	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	inv, err := invoices.Create(ctx, entities.Invoice{
		ClientID: c.ID, QuoteID: &quoteID, Amount: 900, Status: entities.InvoiceStatusSent,
		DueDate: now.Add(-24 * time.Hour), PaymentTerms: entities.DefaultPaymentTerms,
	})
	require.NoError(t, err)

	t.Run("one invoice per quote", func(t *testing.T) {
		_, err := invoices.Create(ctx, entities.Invoice{ClientID: c.ID, QuoteID: &quoteID, Amount: 1, Status: entities.InvoiceStatusDraft, DueDate: now})
		require.ErrorIs(t, err, interfaces.ErrConflict)

		byQuote, err := invoices.GetByQuoteID(ctx, quoteID)
		require.NoError(t, err)
		require.Equal(t, inv.ID, byQuote.ID)
	})

	t.Run("due before", func(t *testing.T) {
		_, err := invoices.Create(ctx, entities.Invoice{ClientID: c.ID, Amount: 5, Status: entities.InvoiceStatusSent, DueDate: now.Add(24 * time.Hour)})
		require.NoError(t, err)
		_, err = invoices.Create(ctx, entities.Invoice{ClientID: c.ID, Amount: 5, Status: entities.InvoiceStatusPaid, DueDate: now.Add(-24 * time.Hour)})
		require.NoError(t, err)

		due, err := invoices.ListDueBefore(ctx, now, []entities.InvoiceStatus{entities.InvoiceStatusSent, entities.InvoiceStatusViewed})
		require.NoError(t, err)
		require.Len(t, due, 1)
		require.Equal(t, inv.ID, due[0].ID)
	})

	t.Run("conditional status write", func(t *testing.T) {
		paid, err := invoices.Create(ctx, entities.Invoice{ClientID: c.ID, Amount: 7, Status: entities.InvoiceStatusPaid, DueDate: now})
		require.NoError(t, err)

		got, err := invoices.UpdateStatusFrom(ctx, paid.ID, entities.InvoiceStatusSent, entities.InvoiceStatusOverdue)
		require.NoError(t, err)
		require.Zero(t, got.ID)

		after, err := invoices.GetByID(ctx, paid.ID)
		require.NoError(t, err)
		require.Equal(t, entities.InvoiceStatusPaid, after.Status)
	})

	t.Run("deleting the quote keeps the invoice", func(t *testing.T) {
		ok, err := quotes.Delete(ctx, quoteID)
		require.NoError(t, err)
		require.True(t, ok)

		got, err := invoices.GetByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)
		require.Nil(t, got.QuoteID)
	})
}

func TestGormTransactor(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tx := NewGormTransactor(db)
	leads := NewLeadGormRepository(db)

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
			if _, err := leads.Create(ctx, entities.Lead{Name: "tmp", Source: entities.LeadSourceOther, Status: entities.LeadStatusNew}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		all, err := leads.List(ctx, entities.LeadFilter{})
		require.NoError(t, err)
		require.Empty(t, all)
	})

	t.Run("commit and nested join", func(t *testing.T) {
		err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
			if _, err := leads.Create(ctx, entities.Lead{Name: "outer", Source: entities.LeadSourceOther, Status: entities.LeadStatusNew}); err != nil {
				return err
			}
			return tx.WithinTransaction(ctx, func(ctx context.Context) error {
				_, err := leads.Create(ctx, entities.Lead{Name: "inner", Source: entities.LeadSourceOther, Status: entities.LeadStatusNew})
				return err
			})
		})
		require.NoError(t, err)

		all, err := leads.List(ctx, entities.LeadFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
	})
}
