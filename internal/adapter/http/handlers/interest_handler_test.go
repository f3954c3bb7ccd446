package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"thaki_platform/internal/adapter/http/handlers/mocks"
	"thaki_platform/internal/domain/entities"
	"thaki_platform/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInterestHandler_CreateInterest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IInterestUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/interests", NewInterestHandler(uc).CreateInterest)
		return r
	}

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInterestUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/interests", bytes.NewBufferString(`{"serviceName":"AI Solutions"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("incomplete dream request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInterestUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().AddInterest(gomock.Any(), gomock.Any()).Return(entities.ServiceInterest{}, usecase.ErrMissingDreamFields)

		body := `{"serviceName":"Dream Service","customerName":"Ali","email":"a@test.com","type":"dream","projectType":"App"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/interests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "MISSING_DREAM_FIELDS") {
			t.Fatalf("expected MISSING_DREAM_FIELDS, got %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInterestUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().AddInterest(gomock.Any(), gomock.Any()).Return(entities.ServiceInterest{
			ID:           "int-1",
			ServiceName:  "AI Solutions",
			CustomerName: "Ali",
			Email:        "a@test.com",
			Type:         entities.InterestTypeStandard,
		}, nil)

		body := `{"serviceName":"AI Solutions","customerName":"Ali","email":"a@test.com"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/interests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"int-1"`) {
			t.Fatalf("expected created interest in body, got %s", w.Body.String())
		}
	})
}
