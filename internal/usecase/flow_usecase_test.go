package usecase

import (
	"errors"
	"testing"
)

func TestFlowUseCase(t *testing.T) {
	uc := NewFlowUseCase()

	t.Run("unknown module", func(t *testing.T) {
		if _, err := uc.Stages("widgets"); !errors.Is(err, ErrUnknownModule) {
			t.Fatalf("expected ErrUnknownModule, got %v", err)
		}
		if _, _, err := uc.GetStageInfo("widgets", "new"); !errors.Is(err, ErrUnknownModule) {
			t.Fatalf("expected ErrUnknownModule, got %v", err)
		}
	})

	t.Run("unknown status is absent, not an error", func(t *testing.T) {
		_, found, err := uc.GetStageInfo("leads", "Qualified")
		if err != nil || found {
			t.Fatalf("expected absent, got found=%t err=%v", found, err)
		}
	})

	t.Run("transition", func(t *testing.T) {
		ok, err := uc.IsTransitionAllowed("quotes", "sent", "accepted")
		if err != nil || !ok {
			t.Fatalf("expected allowed, got %t err=%v", ok, err)
		}
		ok, err = uc.IsTransitionAllowed("quotes", "accepted", "draft")
		if err != nil || ok {
			t.Fatalf("expected rejected, got %t err=%v", ok, err)
		}
	})

	t.Run("next actions", func(t *testing.T) {
		actions, err := uc.GetNextActions("leads", "qualified")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var conversion bool
		for _, a := range actions {
			if a.TriggersConversion {
				conversion = true
			}
		}
		if !conversion {
			t.Fatalf("expected a conversion action, got %+v", actions)
		}
	})
}
