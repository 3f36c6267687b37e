package handlers

import (
	"context"
	"io"

	"github.com/thumbcard/backend/internal/models"
)

// VideoFetcher resolves a provider video id into a normalized record.
type VideoFetcher interface {
	FetchVideo(ctx context.Context, id string) (models.VideoRecord, error)
}

// LookupRecorder accepts lookup history entries without blocking the request.
type LookupRecorder interface {
	Record(lookup models.Lookup) error
}

// LookupLister reads recent lookup history.
type LookupLister interface {
	ListRecent(ctx context.Context, limit int) ([]models.Lookup, error)
}

// CardStorage publishes rendered card images.
type CardStorage interface {
	Save(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}
