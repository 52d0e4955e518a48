package interfaces

import (
	"context"
	"time"

	"rentalquotes/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Contract notes:
//   - Create must enforce quote-hash uniqueness at the storage layer, not
//     merely advisorily, and must refuse rows with an empty customer name or
//     email.
//   - MarkQuoted only moves pending quotes forward; quoted/paid rows are
//     returned unchanged (no downgrade).
//   - ClaimQuickSend is an atomic test-and-set on the quick-send used flag;
//     exactly one concurrent caller observes claimed=true.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByHash(ctx context.Context, hash string) (entities.Quote, error)
	MarkQuoted(ctx context.Context, id string) (entities.Quote, error)
	ClaimQuickSend(ctx context.Context, id string, at time.Time) (bool, error)
}
