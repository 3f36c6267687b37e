package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/option"

	"github.com/thumbcard/backend/internal/config"
	"github.com/thumbcard/backend/internal/db"
	"github.com/thumbcard/backend/internal/handlers"
	"github.com/thumbcard/backend/internal/history"
	"github.com/thumbcard/backend/internal/middleware"
	"github.com/thumbcard/backend/internal/repositories"
	"github.com/thumbcard/backend/internal/storage"
	"github.com/thumbcard/backend/internal/youtube"
)

const limiterVisitorTTL = 10 * time.Minute

// buildDependencies wires together concrete implementations used by the HTTP handlers.
// A nil pool disables lookup history. The returned cleanup drains background work.
func buildDependencies(ctx context.Context, pool db.Pool, cfg config.Config, logger *slog.Logger) (handlers.Dependencies, func(context.Context) error, error) {
	videos, err := newYouTubeClient(ctx, cfg)
	if err != nil {
		return handlers.Dependencies{}, nil, err
	}

	deps := handlers.Dependencies{
		Videos:         videos,
		LookupLimiter:  middleware.NewIPRateLimiter(cfg.LookupRateLimit, cfg.LookupRateWindow, cfg.LookupRateBurst, limiterVisitorTTL),
		AdminTokenHash: cfg.AdminTokenHash,
		CardMaxBytes:   cfg.CardMaxBytes,
	}

	if cfg.ObjectStore.Enabled() {
		cards, err := storage.NewS3Storage(ctx, cfg.ObjectStore)
		if err != nil {
			return handlers.Dependencies{}, nil, err
		}
		deps.Cards = cards
	}

	cleanup := func(context.Context) error { return nil }

	if pool != nil {
		lookups := repositories.NewPostgresLookupRepository(pool)
		recorder := history.NewRecorder(lookups, history.RecorderConfig{
			QueueSize: cfg.HistoryQueueSize,
			Workers:   cfg.HistoryWorkers,
		}, logger)

		deps.History = recorder
		deps.Lookups = lookups
		cleanup = recorder.Shutdown
	}

	return deps, cleanup, nil
}

func newYouTubeClient(ctx context.Context, cfg config.Config) (*youtube.Client, error) {
	var opts []option.ClientOption
	if cfg.YouTubeEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.YouTubeEndpoint))
	}

	source, err := youtube.NewAPISource(ctx, cfg.YouTubeAPIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("configure youtube source: %w", err)
	}
	return youtube.NewClient(source), nil
}
