package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"rentalquotes/internal/domain/entities"
	mock_interfaces "rentalquotes/internal/usecase/interfaces/mocks"
)

const testSecret = "server-secret"

func quickSendFixtures(t *testing.T) (*mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockINotificationService, *QuickSendUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	notifier := mock_interfaces.NewMockINotificationService(ctrl)
	secrets := mock_interfaces.NewMockISecretProvider(ctrl)
	secrets.EXPECT().QuickSendSecret().Return(testSecret).AnyTimes()
	return quotes, notifier, NewQuickSendUseCase(quotes, notifier, secrets, discardLogger())
}

func pricedQuote() entities.Quote {
	return entities.Quote{
		ID:            "q-1",
		QuoteHash:     "hash-1",
		CustomerName:  "Jo Smith",
		CustomerEmail: "jo@example.com",
		CustomerPhone: "+44 7700 900123",
		RentalPrice:   600,
		Status:        entities.QuoteStatusPending,
	}
}

func TestHandleQuickSend_FirstUse(t *testing.T) {
	quotes, notifier, uc := quickSendFixtures(t)
	q := pricedQuote()
	token := DeriveQuickSendToken(q.ID, q.QuoteHash, testSecret)

	quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
	quotes.EXPECT().ClaimQuickSend(gomock.Any(), "q-1", gomock.Any()).Return(true, nil)
	notifier.EXPECT().SendQuoteEmail(gomock.Any(), "q-1").Return(nil)
	quoted := q
	quoted.Status = entities.QuoteStatusQuoted
	quotes.EXPECT().MarkQuoted(gomock.Any(), "q-1").Return(quoted, nil)

	res, err := uc.HandleQuickSend(context.Background(), "q-1", token, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeSent {
		t.Fatalf("expected sent outcome, got %s", res.Outcome)
	}
	if res.Quote.Status != entities.QuoteStatusQuoted {
		t.Fatalf("expected quoted status, got %s", res.Quote.Status)
	}
	if res.WhatsAppLink != "https://wa.me/447700900123" || res.CallLink != "tel:+447700900123" {
		t.Fatalf("unexpected deep links: %q %q", res.WhatsAppLink, res.CallLink)
	}
}

func TestHandleQuickSend_TokenMismatch(t *testing.T) {
	quotes, _, uc := quickSendFixtures(t)
	quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(pricedQuote(), nil)

	_, err := uc.HandleQuickSend(context.Background(), "q-1", "not-the-token", false)
	if !errors.Is(err, ErrTokenMismatch) {
		t.Fatalf("expected ErrTokenMismatch, got %v", err)
	}
	// No claim, no email: absence of expectations enforces no mutation.
}

func TestHandleQuickSend_PriceNotSet(t *testing.T) {
	quotes, _, uc := quickSendFixtures(t)
	q := pricedQuote()
	q.RentalPrice = 0
	token := DeriveQuickSendToken(q.ID, q.QuoteHash, testSecret)

	quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

	_, err := uc.HandleQuickSend(context.Background(), "q-1", token, false)
	if !errors.Is(err, ErrPriceNotSet) {
		t.Fatalf("expected ErrPriceNotSet, got %v", err)
	}
}

func TestHandleQuickSend_NotFound(t *testing.T) {
	quotes, _, uc := quickSendFixtures(t)
	quotes.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{}, nil)

	_, err := uc.HandleQuickSend(context.Background(), "q-9", "whatever", false)
	if !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

// Second view of an already-used link offers a resend and dispatches
// nothing; only an explicit resend sends again.
func TestHandleQuickSend_UsedLinkFlow(t *testing.T) {
	t.Run("view without resend flag", func(t *testing.T) {
		quotes, _, uc := quickSendFixtures(t)
		q := pricedQuote()
		q.QuickSendUsed = true
		q.Status = entities.QuoteStatusQuoted
		token := DeriveQuickSendToken(q.ID, q.QuoteHash, testSecret)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		res, err := uc.HandleQuickSend(context.Background(), "q-1", token, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != OutcomeAlreadySent {
			t.Fatalf("expected already_sent, got %s", res.Outcome)
		}
	})

	t.Run("explicit resend dispatches again", func(t *testing.T) {
		quotes, notifier, uc := quickSendFixtures(t)
		q := pricedQuote()
		q.QuickSendUsed = true
		q.Status = entities.QuoteStatusQuoted
		token := DeriveQuickSendToken(q.ID, q.QuoteHash, testSecret)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		notifier.EXPECT().SendQuoteEmail(gomock.Any(), "q-1").Return(nil)

		res, err := uc.HandleQuickSend(context.Background(), "q-1", token, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != OutcomeResent {
			t.Fatalf("expected resent, got %s", res.Outcome)
		}
	})
}

// A concurrent first use that loses the atomic claim falls into the
// already-sent branch instead of double-sending.
func TestHandleQuickSend_LostClaimRace(t *testing.T) {
	quotes, _, uc := quickSendFixtures(t)
	q := pricedQuote()
	token := DeriveQuickSendToken(q.ID, q.QuoteHash, testSecret)

	quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
	quotes.EXPECT().ClaimQuickSend(gomock.Any(), "q-1", gomock.Any()).Return(false, nil)

	res, err := uc.HandleQuickSend(context.Background(), "q-1", token, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeAlreadySent {
		t.Fatalf("expected already_sent after lost race, got %s", res.Outcome)
	}
}
