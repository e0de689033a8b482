package handlers

import (
	"net/http"
	"testing"

	"voltflow_crm/internal/adapter/http/handlers/mocks"
	"voltflow_crm/internal/domain/entities"
	"voltflow_crm/internal/domain/flow"
	"voltflow_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newClientRouter(t *testing.T) (*gin.Engine, *mocks.MockIClientUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)

	r := gin.New()
	r.POST("/v1/clients", h.CreateClient)
	r.GET("/v1/clients", h.ListClients)
	r.GET("/v1/clients/:id", h.GetClient)
	r.PUT("/v1/clients/:id", h.UpdateClient)
	r.PATCH("/v1/clients/:id/status", h.UpdateClientStatus)
	r.DELETE("/v1/clients/:id", h.DeleteClient)
	return r, uc
}

func TestClientHandler_CreateClient(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		r, _ := newClientRouter(t)
		w := performRequest(r, http.MethodPost, "/v1/clients", `{"name":"Acme","email":"not-an-email"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, c entities.Client) (entities.Client, error) {
			c.ID = 3
			c.Status = entities.ClientStatusProspective
			return c, nil
		})

		w := performRequest(r, http.MethodPost, "/v1/clients", `{"name":"Acme","email":"ops@acme.io"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		if body := decodeBody(t, w); body["status"] != "prospective" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestClientHandler_UpdateClientStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		r, _ := newClientRouter(t)
		w := performRequest(r, http.MethodPatch, "/v1/clients/3/status", `{"status":"gold"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("transition rejected", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), uint(3), entities.ClientStatusVIP).
			Return(entities.Client{}, &flow.TransitionError{Module: entities.ModuleClients, From: "prospective", To: "vip"})

		w := performRequest(r, http.MethodPatch, "/v1/clients/3/status", `{"status":"vip"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), uint(3), entities.ClientStatusActive).
			Return(entities.Client{ID: 3, Status: entities.ClientStatusActive}, nil)

		w := performRequest(r, http.MethodPatch, "/v1/clients/3/status", `{"status":"active"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestClientHandler_GetAndDelete(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), uint(3)).Return(entities.Client{}, usecase.ErrClientNotFound)

		w := performRequest(r, http.MethodGet, "/v1/clients/3", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list filters by status", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.ClientFilter{Status: entities.ClientStatusVIP}).
			Return([]entities.Client{{ID: 1, Status: entities.ClientStatusVIP}}, nil)

		w := performRequest(r, http.MethodGet, "/v1/clients?status=vip", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newClientRouter(t)
		uc.EXPECT().Delete(gomock.Any(), uint(3)).Return(nil)

		w := performRequest(r, http.MethodDelete, "/v1/clients/3", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
