package interfaces

import (
	"context"

	"rentalquotes/internal/domain/entities"
)

// ICatalogService abstracts the product catalog consumed read-only by the
// derivation engine.
//
// GetAttribute resolves the typed taxonomy attribute first and falls back to
// a plain custom field; "" means the product carries neither.
type ICatalogService interface {
	GetAttribute(ctx context.Context, productID, attributeName string) (string, error)
	ProductExists(ctx context.Context, productID string) (bool, error)
	GetProductPermalink(ctx context.Context, productID string) (string, error)
	ListTerms(ctx context.Context) ([]entities.CatalogTerm, error)
	FirstPublishedProduct(ctx context.Context, termID string) (string, error)
}
