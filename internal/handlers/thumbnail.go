package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/thumbcard/backend/internal/logging"
	"github.com/thumbcard/backend/internal/models"
	"github.com/thumbcard/backend/internal/youtube"
)

// ThumbnailHandler serves normalized video metadata for thumbnail cards.
type ThumbnailHandler struct {
	Videos  VideoFetcher
	Limiter RateLimiter
	History LookupRecorder
	NowFunc func() time.Time
}

// YouTube handles GET /api/thumbnail/youtube?q=<url-or-id>.
func (h ThumbnailHandler) YouTube(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if !allowRequest(h.Limiter, r, "thumbnail") {
		respondError(ctx, w, http.StatusTooManyRequests, "too many requests")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		query = strings.TrimSpace(r.URL.Query().Get("url"))
	}
	if query == "" {
		respondError(ctx, w, http.StatusBadRequest, "q is required")
		return
	}

	if h.Videos == nil {
		logger.Error("video provider not configured")
		respondError(ctx, w, http.StatusServiceUnavailable, "video provider unavailable")
		return
	}

	videoID := youtube.ExtractVideoID(query)
	start := h.now()
	record, err := h.Videos.FetchVideo(ctx, videoID)
	latency := h.now().Sub(start)

	lookup := models.Lookup{
		Query:   query,
		VideoID: videoID,
		Outcome: lookupOutcome(err),
		Latency: latency,
	}
	if err != nil {
		lookup.Error = err.Error()
	}
	h.record(r, lookup)

	if err != nil {
		status, message := classifyFetchError(err)
		attrs := []any{"videoId", videoID, "error", err}
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			attrs = append(attrs, "providerStatus", apiErr.Code)
		}
		logger.Warn("video lookup failed", attrs...)
		respondError(ctx, w, status, message)
		return
	}

	logger.Info("video lookup completed", "videoId", videoID, "latencyMs", latency.Milliseconds())
	respondJSON(ctx, w, http.StatusOK, record)
}

func (h ThumbnailHandler) record(r *http.Request, lookup models.Lookup) {
	if h.History == nil {
		return
	}
	if err := h.History.Record(lookup); err != nil {
		logging.FromContext(r.Context()).Warn("lookup history dropped", "videoId", lookup.VideoID, "error", err)
	}
}

func (h ThumbnailHandler) now() time.Time {
	if h.NowFunc != nil {
		return h.NowFunc()
	}
	return time.Now()
}

func lookupOutcome(err error) string {
	switch {
	case err == nil:
		return models.LookupOutcomeOK
	case errors.Is(err, youtube.ErrNotFound):
		return models.LookupOutcomeNotFound
	case errors.Is(err, youtube.ErrValidation):
		return models.LookupOutcomeInvalid
	default:
		return models.LookupOutcomeError
	}
}

func classifyFetchError(err error) (int, string) {
	switch {
	case errors.Is(err, youtube.ErrNotFound):
		return http.StatusNotFound, "video not found"
	case errors.Is(err, youtube.ErrValidation):
		return http.StatusBadGateway, "provider returned an invalid video record"
	case errors.Is(err, youtube.ErrProviderUnavailable):
		return http.StatusServiceUnavailable, "video provider unavailable"
	default:
		return http.StatusBadGateway, "video provider request failed"
	}
}
