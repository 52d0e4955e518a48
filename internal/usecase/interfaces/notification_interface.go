package interfaces

import (
	"context"

	"rentalquotes/internal/domain/entities"
)

// INotificationService abstracts outbound mail. NotifyAdmins is
// fire-and-forget after a successful quote creation; SendQuoteEmail is the
// customer-facing dispatch gated by the quick-send token flow.
type INotificationService interface {
	NotifyAdmins(ctx context.Context, quoteID string, draft entities.DerivedQuoteDraft) error
	SendQuoteEmail(ctx context.Context, quoteID string) error
}
