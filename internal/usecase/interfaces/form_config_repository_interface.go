package interfaces

import (
	"context"

	"rentalquotes/internal/domain/entities"
)

// IFormConfigRepository reads the per-form field mappings owned by the
// settings subsystem. This service never writes them.
type IFormConfigRepository interface {
	GetByFormID(ctx context.Context, formID string) (entities.FieldMappingConfig, error)
}
