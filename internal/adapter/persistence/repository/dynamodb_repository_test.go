package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"voltflow_crm/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestFlowEventDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := &fakeDynamo{}
	repo := NewFlowEventDynamoRepository(ddb)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i, e := range []entities.FlowEvent{
		{ID: "a", Module: entities.ModuleLeads, EntityID: 7, Action: entities.FlowActionCreate, CreatedAt: base},
		{ID: "b", Module: entities.ModuleLeads, EntityID: 7, Action: entities.FlowActionConvert, RelatedModule: entities.ModuleClients, RelatedID: 1, CreatedAt: base.Add(time.Second)},
		{ID: "c", Module: entities.ModuleQuotes, EntityID: 42, Action: entities.FlowActionStatusChange, FromStatus: "draft", ToStatus: "sent", CreatedAt: base.Add(2 * time.Second)},
	} {
		_, err := repo.Create(ctx, e)
		require.NoError(t, err, "event %d", i)
	}
	require.Equal(t, "flow_events", *ddb.lastPut.TableName)
	require.Equal(t, "attribute_not_exists(#id)", *ddb.lastPut.ConditionExpression)

	t.Run("duplicate id is refused", func(t *testing.T) {
		_, err := repo.Create(ctx, entities.FlowEvent{ID: "a", Module: entities.ModuleLeads, EntityID: 7, CreatedAt: base})
		require.Error(t, err)
	})

	t.Run("by entity newest first", func(t *testing.T) {
		got, err := repo.ListByEntity(ctx, entities.ModuleLeads, 7)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "b", got[0].ID)
		require.Equal(t, entities.ModuleClients, got[0].RelatedModule)
		require.Equal(t, uint(1), got[0].RelatedID)
		require.True(t, base.Add(time.Second).Equal(got[0].CreatedAt))
		require.Equal(t, flowEventsEntityKeyIndex, *ddb.lastQry.IndexName)
	})

	t.Run("recent honours limit", func(t *testing.T) {
		got, err := repo.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "c", got[0].ID)
		require.Equal(t, "draft", got[0].FromStatus)
		require.Equal(t, "b", got[1].ID)
	})

	t.Run("query failure", func(t *testing.T) {
		ddb.queryErr = errors.New("throttled")
		defer func() { ddb.queryErr = nil }()
		_, err := repo.ListRecent(ctx, 5)
		require.EqualError(t, err, "throttled")
	})
}

func TestInvoicePaymentDynamoRepository(t *testing.T) {
	ctx := context.Background()
	t.Setenv("PAYMENTS_TABLE", "payments_test")
	ddb := &fakeDynamo{}
	repo := NewInvoicePaymentDynamoRepository(ddb)
	when := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

	raw := json.RawMessage(`{"id":123,"status":"approved"}`)
	_, err := repo.Create(ctx, entities.InvoicePayment{
		ID: "p1", InvoiceID: 11, Amount: 99.5, Date: when,
		Status: entities.PaymentStatusApproved, ProviderStatus: "approved",
		PayloadRaw: raw, Payload: map[string]interface{}{"status": "approved"},
	})
	require.NoError(t, err)
	require.Equal(t, "payments_test", *ddb.lastPut.TableName)

	_, err = repo.Create(ctx, entities.InvoicePayment{ID: "p2", InvoiceID: 12, Amount: 1, Date: when, Status: entities.PaymentStatusPending})
	require.NoError(t, err)

	got, err := repo.ListByInvoiceID(ctx, 11)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "p1", got[0].ID)
	require.Equal(t, 99.5, got[0].Amount)
	require.True(t, when.Equal(got[0].Date))
	require.Equal(t, entities.PaymentStatusApproved, got[0].Status)
	require.JSONEq(t, string(raw), string(got[0].PayloadRaw))
	require.Equal(t, "approved", got[0].Payload["status"])

	none, err := repo.ListByInvoiceID(ctx, 99)
	require.NoError(t, err)
	require.Empty(t, none)

	t.Run("put failure", func(t *testing.T) {
		ddb.putErr = errors.New("unavailable")
		_, err := repo.Create(ctx, entities.InvoicePayment{ID: "p3", InvoiceID: 11, Date: when})
		require.EqualError(t, err, "unavailable")
	})
}
