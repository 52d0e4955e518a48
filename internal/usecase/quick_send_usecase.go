package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"rentalquotes/internal/domain/entities"
	"rentalquotes/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
	ErrTokenMismatch  = errors.New("quick-send token mismatch")
	ErrPriceNotSet    = errors.New("rental price not set")
)

// QuickSendOutcome is the terminal state of one quick-send request.
type QuickSendOutcome string

const (
	// OutcomeSent: first use of the token; the quote email went out.
	OutcomeSent QuickSendOutcome = "sent"
	// OutcomeAlreadySent: the link was used before and no resend was
	// requested; nothing was dispatched.
	OutcomeAlreadySent QuickSendOutcome = "already_sent"
	// OutcomeResent: explicit resend of an already-used link.
	OutcomeResent QuickSendOutcome = "resent"
)

type QuickSendResult struct {
	Outcome      QuickSendOutcome
	Quote        entities.Quote
	WhatsAppLink string
	CallLink     string
}

// IQuickSendUseCase drives the one-time token-gated quote email dispatch.
type IQuickSendUseCase interface {
	HandleQuickSend(ctx context.Context, quoteID, token string, resend bool) (QuickSendResult, error)
}

type QuickSendUseCase struct {
	quotes   interfaces.IQuoteRepository
	notifier interfaces.INotificationService
	secrets  interfaces.ISecretProvider
	log      *slog.Logger
}

var _ IQuickSendUseCase = (*QuickSendUseCase)(nil)

func NewQuickSendUseCase(quotes interfaces.IQuoteRepository, notifier interfaces.INotificationService, secrets interfaces.ISecretProvider, log *slog.Logger) *QuickSendUseCase {
	return &QuickSendUseCase{quotes: quotes, notifier: notifier, secrets: secrets, log: log}
}

// HandleQuickSend validates the token and advances the link state machine.
// Order matters: the token is checked before any state is touched, the
// price gate before the used-flag claim, and the claim before the email is
// considered dispatched. Two near-simultaneous requests on a fresh token
// race on the atomic claim; the loser sees the already-sent branch.
func (u *QuickSendUseCase) HandleQuickSend(ctx context.Context, quoteID, token string, resend bool) (QuickSendResult, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return QuickSendResult{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return QuickSendResult{}, err
	}
	if q.ID == "" {
		return QuickSendResult{}, ErrQuoteNotFound
	}

	expected := DeriveQuickSendToken(q.ID, q.QuoteHash, u.secrets.QuickSendSecret())
	if !quickSendTokenMatches(expected, token) {
		return QuickSendResult{}, ErrTokenMismatch
	}

	if q.QuickSendUsed {
		return u.handleUsedLink(ctx, q, resend)
	}

	if q.RentalPrice <= 0 {
		return QuickSendResult{}, ErrPriceNotSet
	}

	claimed, err := u.quotes.ClaimQuickSend(ctx, q.ID, time.Now().UTC())
	if err != nil {
		return QuickSendResult{}, err
	}
	if !claimed {
		// Lost the race to a concurrent first use.
		return u.handleUsedLink(ctx, q, resend)
	}

	if err := u.notifier.SendQuoteEmail(ctx, q.ID); err != nil {
		// The claim stands; the explicit resend path recovers from here.
		return QuickSendResult{}, err
	}

	updated, err := u.quotes.MarkQuoted(ctx, q.ID)
	if err != nil {
		u.log.Warn("status transition failed after send", slog.String("quote_id", q.ID), slog.String("error", err.Error()))
		updated = q
	}

	u.log.Info("quick-send dispatched", slog.String("quote_id", q.ID))
	return QuickSendResult{
		Outcome:      OutcomeSent,
		Quote:        updated,
		WhatsAppLink: WhatsAppLink(q.CustomerPhone),
		CallLink:     CallLink(q.CustomerPhone),
	}, nil
}

// handleUsedLink: viewing an already-used link has no side effects; only an
// explicit resend re-dispatches. The resend skips the price gate since the
// price was valid at least once.
func (u *QuickSendUseCase) handleUsedLink(ctx context.Context, q entities.Quote, resend bool) (QuickSendResult, error) {
	if !resend {
		return QuickSendResult{Outcome: OutcomeAlreadySent, Quote: q}, nil
	}

	if err := u.notifier.SendQuoteEmail(ctx, q.ID); err != nil {
		return QuickSendResult{}, err
	}
	u.log.Info("quick-send re-dispatched", slog.String("quote_id", q.ID))
	return QuickSendResult{
		Outcome:      OutcomeResent,
		Quote:        q,
		WhatsAppLink: WhatsAppLink(q.CustomerPhone),
		CallLink:     CallLink(q.CustomerPhone),
	}, nil
}

// WhatsAppLink builds a wa.me deep link from a free-form phone number, ""
// when no digits are present.
func WhatsAppLink(phone string) string {
	digits := phoneDigits(phone)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}

func CallLink(phone string) string {
	digits := phoneDigits(phone)
	if digits == "" {
		return ""
	}
	return "tel:+" + digits
}

func phoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
