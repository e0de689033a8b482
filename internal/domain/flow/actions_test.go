package flow

import (
	"testing"

	"voltflow_crm/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestNextActions_Conversions(t *testing.T) {
	actions := NextActionsFor(entities.LeadStatusQualified)
	require.Len(t, actions, 1)
	require.Equal(t, "convert-to-client", actions[0].ID)
	require.True(t, actions[0].TriggersConversion)
	require.Equal(t, ConversionLeadToClient, actions[0].Conversion)
	require.Equal(t, PriorityHigh, actions[0].Priority)

	accepted := NextActionsFor(entities.QuoteStatusAccepted)
	var ids []string
	for _, a := range accepted {
		ids = append(ids, a.ID)
	}
	require.ElementsMatch(t, []string{"create-job", "create-invoice"}, ids)

	completed := NextActionsFor(entities.JobStatusCompleted)
	require.Len(t, completed, 1)
	require.Equal(t, "generate-invoice", completed[0].ID)
	require.False(t, completed[0].TriggersConversion)
	require.Equal(t, ActionCreate, completed[0].Kind)
}

func TestNextActions_UnknownIsEmpty(t *testing.T) {
	require.Empty(t, NextActions(entities.ModuleLeads, "Qualified"))
	require.Empty(t, NextActions(entities.Module("deals"), "new"))
	require.NotNil(t, NextActions(entities.ModuleLeads, "nope"))
	require.Empty(t, NextActionsFor(entities.InvoiceStatusPaid))
}

func TestNextActions_Idempotent(t *testing.T) {
	first := NextActions(entities.ModuleQuotes, "sent")
	first[0].Label = "changed"
	second := NextActions(entities.ModuleQuotes, "sent")
	third := NextActions(entities.ModuleQuotes, "sent")
	require.Equal(t, second, third)
	require.NotEqual(t, "changed", second[0].Label)
}

func TestNextActions_TargetsAreReachable(t *testing.T) {
	for key, actions := range actionTable {
		_, ok := GetStageInfo(key.module, key.status)
		require.Truef(t, ok, "actions declared for unknown stage %s/%s", key.module, key.status)
		for _, a := range actions {
			switch a.Kind {
			case ActionStatusUpdate:
				require.Truef(t, IsTransitionAllowed(key.module, key.status, a.TargetStatus),
					"%s/%s action %s targets unreachable %s", key.module, key.status, a.ID, a.TargetStatus)
			case ActionConversion:
				require.True(t, a.TriggersConversion)
				require.NotEmpty(t, a.Conversion)
				reachable := a.TargetStatus == key.status || IsTransitionAllowed(key.module, key.status, a.TargetStatus)
				require.Truef(t, reachable, "%s/%s conversion %s", key.module, key.status, a.ID)
			case ActionCreate:
				require.False(t, a.TriggersConversion)
				require.NotEmpty(t, a.TargetModule)
			default:
				t.Fatalf("unexpected action kind %q", a.Kind)
			}
		}
	}
}
