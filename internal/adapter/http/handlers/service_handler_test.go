package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"nishad_gateway/internal/adapter/http/handlers/mocks"
	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newServiceRouter(uc usecase.IServiceUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewServiceHandler(uc)
	r := gin.New()
	r.GET("/v1/services/menu", h.Menu)
	r.GET("/v1/services/slug/:slug", h.GetBySlug)
	r.GET("/v1/services", h.List)
	r.POST("/v1/services", h.Create)
	r.PUT("/v1/services/:id", h.Update)
	r.DELETE("/v1/services/:id", h.Delete)
	return r
}

func TestServiceHandler(t *testing.T) {
	t.Run("menu", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().Menu(gomock.Any()).Return([]entities.MenuItem{{ID: "s-1", Title: "Company Formation"}}, nil)

		w := httptest.NewRecorder()
		newServiceRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/services/menu", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("slug not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().GetBySlug(gomock.Any(), "hidden").Return(usecase.ServiceDetail{}, usecase.ErrServiceNotFound)

		w := httptest.NewRecorder()
		newServiceRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/services/slug/hidden", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.ServiceInput) (entities.Service, error) {
				if in.Title == nil || *in.Title != "Tax" || in.Slug != nil || in.IsActive == nil || !*in.IsActive {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Service{ID: "s-1", Title: "Tax", Slug: "tax"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"title":"Tax","isActive":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newServiceRouter(uc).ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("create with taken slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Service{}, usecase.ErrServiceSlugTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"title":"Tax"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newServiceRouter(uc).ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("update invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPut, "/v1/services/s-1", bytes.NewBufferString(`{"title":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newServiceRouter(uc).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "s-1").Return(nil)

		w := httptest.NewRecorder()
		newServiceRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/services/s-1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
