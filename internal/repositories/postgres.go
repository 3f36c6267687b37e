package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/thumbcard/backend/internal/db"
	"github.com/thumbcard/backend/internal/models"
)

const maxListLimit = 500

// PostgresLookupRepository stores lookup history in PostgreSQL.
type PostgresLookupRepository struct {
	pool db.Pool
}

// NewPostgresLookupRepository constructs a lookup repository backed by PostgreSQL.
func NewPostgresLookupRepository(pool db.Pool) *PostgresLookupRepository {
	return &PostgresLookupRepository{pool: pool}
}

// Insert persists a single lookup entry.
func (r *PostgresLookupRepository) Insert(ctx context.Context, lookup models.Lookup) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, `
        INSERT INTO lookups (id, query, video_id, outcome, error, latency_ms, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, lookup.ID, lookup.Query, lookup.VideoID, lookup.Outcome, lookup.Error, lookup.Latency.Milliseconds(), lookup.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return fmt.Errorf("insert lookup: %w", err)
	}

	return nil
}

// ListRecent returns up to limit lookups, newest first.
func (r *PostgresLookupRepository) ListRecent(ctx context.Context, limit int) ([]models.Lookup, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
        SELECT id, query, video_id, outcome, error, latency_ms, created_at
        FROM lookups
        ORDER BY created_at DESC, id
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("select lookups: %w", err)
	}
	defer rows.Close()

	var lookups []models.Lookup
	for rows.Next() {
		var (
			lookup    models.Lookup
			latencyMS int64
		)
		if err := rows.Scan(&lookup.ID, &lookup.Query, &lookup.VideoID, &lookup.Outcome, &lookup.Error, &latencyMS, &lookup.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		lookup.Latency = time.Duration(latencyMS) * time.Millisecond
		lookups = append(lookups, lookup)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lookups: %w", err)
	}

	return lookups, nil
}
