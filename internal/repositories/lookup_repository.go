package repositories

import (
	"context"

	"github.com/thumbcard/backend/internal/models"
)

// LookupRepository exposes data access for the lookup history.
type LookupRepository interface {
	Insert(ctx context.Context, lookup models.Lookup) error
	ListRecent(ctx context.Context, limit int) ([]models.Lookup, error)
}
