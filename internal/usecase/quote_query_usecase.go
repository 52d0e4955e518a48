package usecase

import (
	"context"
	"errors"
	"strings"

	"rentalquotes/internal/domain/entities"
	"rentalquotes/internal/usecase/interfaces"
)

var ErrInvalidQuoteHash = errors.New("invalid quote hash")

// IQuoteQueryUseCase serves the public quote view behind /quote/{hash}.
type IQuoteQueryUseCase interface {
	GetByHash(ctx context.Context, hash string) (entities.Quote, error)
}

type QuoteQueryUseCase struct {
	quotes interfaces.IQuoteRepository
}

var _ IQuoteQueryUseCase = (*QuoteQueryUseCase)(nil)

func NewQuoteQueryUseCase(quotes interfaces.IQuoteRepository) *QuoteQueryUseCase {
	return &QuoteQueryUseCase{quotes: quotes}
}

func (u *QuoteQueryUseCase) GetByHash(ctx context.Context, hash string) (entities.Quote, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return entities.Quote{}, ErrInvalidQuoteHash
	}

	q, err := u.quotes.GetByHash(ctx, hash)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
