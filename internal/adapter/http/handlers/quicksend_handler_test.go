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

func quickSendURL(quoteID, token, resend string) string {
	u := "/v1/quick-send?crqa_action=quick_send&quote_id=" + quoteID + "&token=" + token
	if resend != "" {
		u += "&resend=" + resend
	}
	return u
}

func TestQuickSendHandler_HandleQuickSend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IQuickSendUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/v1/quick-send", NewQuickSendHandler(uc).HandleQuickSend)
		return r
	}

	t.Run("unknown action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIQuickSendUseCase(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/v1/quick-send?crqa_action=other", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("first use sends the quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuickSendUseCase(ctrl)
		uc.EXPECT().
			HandleQuickSend(gomock.Any(), "q-1", "tok", false).
			Return(usecase.QuickSendResult{
				Outcome:      usecase.OutcomeSent,
				Quote:        entities.Quote{ID: "q-1", QuoteHash: "abc123", CustomerPhone: "+44 7700 900123", RentalPrice: 600, Status: entities.QuoteStatusQuoted},
				WhatsAppLink: "https://wa.me/447700900123",
				CallLink:     "tel:+447700900123",
			}, nil)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodGet, quickSendURL("q-1", "tok", ""), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["outcome"] != "sent" {
			t.Fatalf("expected outcome sent, got %v", resp["outcome"])
		}
		if resp["whatsapp_link"] != "https://wa.me/447700900123" {
			t.Fatalf("unexpected whatsapp link: %v", resp["whatsapp_link"])
		}
	})

	t.Run("token mismatch is a generic forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuickSendUseCase(ctrl)
		uc.EXPECT().
			HandleQuickSend(gomock.Any(), "q-1", "bad", false).
			Return(usecase.QuickSendResult{}, usecase.ErrTokenMismatch)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodGet, quickSendURL("q-1", "bad", ""), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		// No detail about which part of the link failed.
		if resp["code"] != "FORBIDDEN" {
			t.Fatalf("unexpected error code: %v", resp["code"])
		}
	})

	t.Run("price not set is actionable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuickSendUseCase(ctrl)
		uc.EXPECT().
			HandleQuickSend(gomock.Any(), "q-1", "tok", false).
			Return(usecase.QuickSendResult{}, usecase.ErrPriceNotSet)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodGet, quickSendURL("q-1", "tok", ""), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuickSendUseCase(ctrl)
		uc.EXPECT().
			HandleQuickSend(gomock.Any(), "gone", "tok", false).
			Return(usecase.QuickSendResult{}, usecase.ErrQuoteNotFound)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodGet, quickSendURL("gone", "tok", ""), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("used link then explicit resend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuickSendUseCase(ctrl)
		q := entities.Quote{ID: "q-1", QuoteHash: "abc123", RentalPrice: 600, QuickSendUsed: true}
		gomock.InOrder(
			uc.EXPECT().
				HandleQuickSend(gomock.Any(), "q-1", "tok", false).
				Return(usecase.QuickSendResult{Outcome: usecase.OutcomeAlreadySent, Quote: q}, nil),
			uc.EXPECT().
				HandleQuickSend(gomock.Any(), "q-1", "tok", true).
				Return(usecase.QuickSendResult{Outcome: usecase.OutcomeResent, Quote: q}, nil),
		)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodGet, quickSendURL("q-1", "tok", ""), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("revisit: expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["outcome"] != "already_sent" {
			t.Fatalf("expected outcome already_sent, got %v", resp["outcome"])
		}

		req = httptest.NewRequest(http.MethodGet, quickSendURL("q-1", "tok", "1"), nil)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("resend: expected 200, got %d", w.Code)
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["outcome"] != "resent" {
			t.Fatalf("expected outcome resent, got %v", resp["outcome"])
		}
	})
}
