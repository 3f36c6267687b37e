package history

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thumbcard/backend/internal/logging"
	"github.com/thumbcard/backend/internal/models"
)

// Store persists lookup entries.
type Store interface {
	Insert(ctx context.Context, lookup models.Lookup) error
}

// RecorderConfig controls the concurrency characteristics of the recorder.
type RecorderConfig struct {
	QueueSize    int
	Workers      int
	WriteTimeout time.Duration
}

// Recorder writes lookup history in the background so lookups never wait on the database.
type Recorder struct {
	store   Store
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time

	mu     sync.RWMutex
	closed bool
	jobs   chan models.Lookup
	wg     sync.WaitGroup
}

// ErrRecorderClosed is returned by Record after Shutdown.
var ErrRecorderClosed = errors.New("history recorder closed")

// ErrQueueFull is returned when the recorder cannot accept another entry.
var ErrQueueFull = errors.New("history queue full")

// NewRecorder starts cfg.Workers goroutines draining a queue of cfg.QueueSize entries.
func NewRecorder(store Store, cfg RecorderConfig, logger *slog.Logger) *Recorder {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	rec := &Recorder{
		store:   store,
		logger:  logger,
		timeout: cfg.WriteTimeout,
		now:     time.Now,
		jobs:    make(chan models.Lookup, cfg.QueueSize),
	}

	rec.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go rec.worker()
	}

	return rec
}

// Record queues lookup for persistence without blocking. Missing ids and timestamps are
// filled in.
func (r *Recorder) Record(lookup models.Lookup) error {
	if lookup.ID == "" {
		lookup.ID = uuid.NewString()
	}
	if lookup.CreatedAt.IsZero() {
		lookup.CreatedAt = r.now().UTC()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return ErrRecorderClosed
	}

	select {
	case r.jobs <- lookup:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown stops accepting entries and waits for queued entries to be written.
func (r *Recorder) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.jobs)
	}
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

func (r *Recorder) worker() {
	defer r.wg.Done()

	for lookup := range r.jobs {
		r.write(lookup)
	}
}

func (r *Recorder) write(lookup models.Lookup) {
	if r.store == nil {
		r.logger.Error("history recorder missing store", "lookupId", lookup.ID)
		return
	}

	ctx, cancel := context.WithTimeout(logging.WithLogger(context.Background(), r.logger), r.timeout)
	defer cancel()

	ctx, span := logging.StartSpan(ctx, "history.insert")
	defer span.End()

	if err := r.store.Insert(ctx, lookup); err != nil {
		logging.FromContext(ctx).Error("record lookup", "lookupId", lookup.ID, "videoId", lookup.VideoID, "error", err)
	}
}
