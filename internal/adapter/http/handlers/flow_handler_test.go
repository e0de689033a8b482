package handlers

import (
	"net/http"
	"testing"

	"voltflow_crm/internal/adapter/http/handlers/mocks"
	"voltflow_crm/internal/domain/flow"
	"voltflow_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newFlowRouter(t *testing.T) (*gin.Engine, *mocks.MockIFlowUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIFlowUseCase(ctrl)
	h := NewFlowHandler(uc)

	r := gin.New()
	r.GET("/v1/flow/:module/stages", h.ListStages)
	r.GET("/v1/flow/:module/stages/:status", h.GetStage)
	r.GET("/v1/flow/:module/transitions", h.CheckTransition)
	r.GET("/v1/flow/:module/actions", h.NextActions)
	return r, uc
}

func TestFlowHandler_ListStages(t *testing.T) {
	t.Run("unknown module", func(t *testing.T) {
		r, uc := newFlowRouter(t)
		uc.EXPECT().Stages("widgets").Return(nil, usecase.ErrUnknownModule)

		w := performRequest(r, http.MethodGet, "/v1/flow/widgets/stages", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "UNKNOWN_MODULE" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newFlowRouter(t)
		uc.EXPECT().Stages("leads").Return([]flow.StageDescriptor{{ID: "new", Name: "New"}, {ID: "contacted", Name: "Contacted"}}, nil)

		w := performRequest(r, http.MethodGet, "/v1/flow/leads/stages", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		stages, ok := body["stages"].([]any)
		if body["module"] != "leads" || !ok || len(stages) != 2 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestFlowHandler_GetStage(t *testing.T) {
	t.Run("unknown stage", func(t *testing.T) {
		r, uc := newFlowRouter(t)
		uc.EXPECT().GetStageInfo("quotes", "archived").Return(flow.StageDescriptor{}, false, nil)

		w := performRequest(r, http.MethodGet, "/v1/flow/quotes/stages/archived", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		r, uc := newFlowRouter(t)
		uc.EXPECT().GetStageInfo("quotes", "sent").
			Return(flow.StageDescriptor{ID: "sent", Name: "Sent", AllowedTransitions: []string{"reviewed", "accepted"}}, true, nil)

		w := performRequest(r, http.MethodGet, "/v1/flow/quotes/stages/sent", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["id"] != "sent" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestFlowHandler_CheckTransition(t *testing.T) {
	t.Run("missing query", func(t *testing.T) {
		r, _ := newFlowRouter(t)
		w := performRequest(r, http.MethodGet, "/v1/flow/leads/transitions?from=new", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("answers without error for a disallowed move", func(t *testing.T) {
		r, uc := newFlowRouter(t)
		uc.EXPECT().IsTransitionAllowed("leads", "lost", "qualified").Return(false, nil)

		w := performRequest(r, http.MethodGet, "/v1/flow/leads/transitions?from=lost&to=qualified", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["allowed"] != false {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestFlowHandler_NextActions(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		r, _ := newFlowRouter(t)
		w := performRequest(r, http.MethodGet, "/v1/flow/quotes/actions", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newFlowRouter(t)
		uc.EXPECT().GetNextActions("quotes", "accepted").Return([]flow.ActionDescriptor{
			{ID: "quote-to-invoice", Label: "Create Invoice", Action: "convert", Priority: flow.PriorityHigh},
		}, nil)

		w := performRequest(r, http.MethodGet, "/v1/flow/quotes/actions?status=accepted", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		actions, ok := body["actions"].([]any)
		if !ok || len(actions) != 1 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
