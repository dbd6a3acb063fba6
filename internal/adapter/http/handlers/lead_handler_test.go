package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nishad_gateway/internal/adapter/http/handlers/mocks"
	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newLeadRouter(uc usecase.ILeadUseCase, now time.Time) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewLeadHandler(uc)
	h.now = func() time.Time { return now }

	r := gin.New()
	r.GET("/v1/leads", h.List)
	r.GET("/v1/leads/stats", h.Stats)
	r.GET("/v1/leads/export", h.Export)
	r.GET("/v1/leads/:id", h.Get)
	r.PATCH("/v1/leads/:id/status", h.UpdateStatus)
	return r
}

func TestLeadHandler(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Lead{{ID: "l-2"}, {ID: "l-1"}}, nil)

		w := httptest.NewRecorder()
		newLeadRouter(uc, now).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			Success bool            `json:"success"`
			Leads   []entities.Lead `json:"leads"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !resp.Success || len(resp.Leads) != 2 || resp.Leads[0].ID != "l-2" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})

	t.Run("stats uses current time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().Stats(gomock.Any(), now).Return(entities.LeadStats{Total: 4, Today: 1}, nil)

		w := httptest.NewRecorder()
		newLeadRouter(uc, now).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads/stats", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().Export(gomock.Any()).Return([]byte("xlsx"), nil)

		w := httptest.NewRecorder()
		newLeadRouter(uc, now).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads/export", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
			t.Fatalf("unexpected content type %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="leads_2026-10-19.xlsx"` {
			t.Fatalf("unexpected disposition %q", cd)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Lead{}, usecase.ErrLeadNotFound)

		w := httptest.NewRecorder()
		newLeadRouter(uc, now).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/leads/missing", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "l-1", entities.LeadStatusContacted).
			Return(entities.Lead{ID: "l-1", Status: entities.LeadStatusContacted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/leads/l-1/status", bytes.NewBufferString(`{"status":"contacted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newLeadRouter(uc, now).ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update with bad status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "l-1", entities.LeadStatus("won")).
			Return(entities.Lead{}, usecase.ErrInvalidLeadStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/leads/l-1/status", bytes.NewBufferString(`{"status":"won"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newLeadRouter(uc, now).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INVALID_LEAD_STATUS" {
			t.Fatalf("unexpected body %v", resp)
		}
	})
}
