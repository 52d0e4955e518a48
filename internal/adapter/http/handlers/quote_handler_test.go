package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentalquotes/internal/adapter/http/handlers/mocks"
	"rentalquotes/internal/domain/entities"
	"rentalquotes/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_GetQuoteByHash(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IQuoteQueryUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/v1/quotes/:hash", NewQuoteHandler(uc).GetQuoteByHash)
		return r
	}

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteQueryUseCase(ctrl)
		uc.EXPECT().
			GetByHash(gomock.Any(), "abc123").
			Return(entities.Quote{ID: "q-1", QuoteHash: "abc123", CustomerName: "Jane Smith", Status: entities.QuoteStatusPending}, nil)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/abc123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["quote_hash"] != "abc123" {
			t.Fatalf("unexpected quote hash: %v", resp["quote_hash"])
		}
		if _, ok := resp["id"]; ok {
			t.Fatalf("internal id must not be exposed: %v", resp)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteQueryUseCase(ctrl)
		uc.EXPECT().
			GetByHash(gomock.Any(), "missing").
			Return(entities.Quote{}, usecase.ErrQuoteNotFound)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
