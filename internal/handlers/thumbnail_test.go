package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/thumbcard/backend/internal/models"
	"github.com/thumbcard/backend/internal/youtube"
)

type videoFetcherStub struct {
	record models.VideoRecord
	err    error
	ids    []string
}

func (s *videoFetcherStub) FetchVideo(ctx context.Context, id string) (models.VideoRecord, error) {
	_ = ctx
	s.ids = append(s.ids, id)
	return s.record, s.err
}

type lookupRecorderStub struct {
	mu      sync.Mutex
	lookups []models.Lookup
	err     error
}

func (s *lookupRecorderStub) Record(lookup models.Lookup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups = append(s.lookups, lookup)
	return s.err
}

type limiterStub struct {
	allow bool
	keys  []string
}

func (l *limiterStub) Allow(key string) bool {
	l.keys = append(l.keys, key)
	return l.allow
}

func sampleRecord() models.VideoRecord {
	return models.VideoRecord{
		Type:           models.ProviderYouTube,
		ID:             "dQw4w9WgXcQ",
		Title:          "Never Gonna Give You Up",
		ThumbnailURL:   "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		ChannelName:    "Rick Astley",
		ChannelLogoURL: "https://yt3.ggpht.com/logo.jpg",
		Duration:       "3:33",
		ViewsCount:     1500000000,
		PublishedAt:    time.Date(2009, time.October, 25, 6, 57, 33, 0, time.UTC),
	}
}

func steppingClock(step time.Duration) func() time.Time {
	current := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now := current
		current = current.Add(step)
		return now
	}
}

func TestThumbnailHandlerSuccess(t *testing.T) {
	fetcher := &videoFetcherStub{record: sampleRecord()}
	history := &lookupRecorderStub{}
	handler := ThumbnailHandler{Videos: fetcher, History: history, NowFunc: steppingClock(120 * time.Millisecond)}

	req := httptest.NewRequest(http.MethodGet, "/api/thumbnail/youtube?q=https://www.youtube.com/watch?v%3DdQw4w9WgXcQ", nil)
	rec := httptest.NewRecorder()

	handler.YouTube(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if len(fetcher.ids) != 1 || fetcher.ids[0] != "dQw4w9WgXcQ" {
		t.Fatalf("expected extracted id to be fetched, got %v", fetcher.ids)
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["type"] != "youtube" || body["channelName"] != "Rick Astley" || body["duration"] != "3:33" {
		t.Fatalf("unexpected body %v", body)
	}
	if body["publishedAt"] != "2009-10-25T06:57:33Z" {
		t.Fatalf("unexpected publishedAt %v", body["publishedAt"])
	}
	if body["viewsCount"] != float64(1500000000) {
		t.Fatalf("unexpected viewsCount %v", body["viewsCount"])
	}

	if len(history.lookups) != 1 {
		t.Fatalf("expected one lookup recorded got %d", len(history.lookups))
	}
	got := history.lookups[0]
	if got.Outcome != models.LookupOutcomeOK || got.VideoID != "dQw4w9WgXcQ" || got.Error != "" {
		t.Fatalf("unexpected lookup %+v", got)
	}
	if got.Latency != 120*time.Millisecond {
		t.Fatalf("unexpected latency %v", got.Latency)
	}
}

func TestThumbnailHandlerAcceptsURLParam(t *testing.T) {
	fetcher := &videoFetcherStub{record: sampleRecord()}
	handler := ThumbnailHandler{Videos: fetcher}

	req := httptest.NewRequest(http.MethodGet, "/api/thumbnail/youtube?url=https://youtu.be/dQw4w9WgXcQ", nil)
	rec := httptest.NewRecorder()

	handler.YouTube(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}
	if fetcher.ids[0] != "dQw4w9WgXcQ" {
		t.Fatalf("unexpected id %q", fetcher.ids[0])
	}
}

func TestThumbnailHandlerErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		outcome string
	}{
		{name: "not found", err: youtube.ErrNotFound, status: http.StatusNotFound, outcome: models.LookupOutcomeNotFound},
		{name: "validation", err: &youtube.ValidationError{VideoID: "x", Fields: []youtube.FieldError{{Field: "title", Rule: "required"}}}, status: http.StatusBadGateway, outcome: models.LookupOutcomeInvalid},
		{name: "provider", err: &googleapi.Error{Code: http.StatusForbidden, Message: "quotaExceeded"}, status: http.StatusBadGateway, outcome: models.LookupOutcomeError},
		{name: "transport", err: errors.New("connection reset"), status: http.StatusBadGateway, outcome: models.LookupOutcomeError},
		{name: "unavailable", err: youtube.ErrProviderUnavailable, status: http.StatusServiceUnavailable, outcome: models.LookupOutcomeError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			history := &lookupRecorderStub{}
			handler := ThumbnailHandler{Videos: &videoFetcherStub{err: tc.err}, History: history}

			req := httptest.NewRequest(http.MethodGet, "/api/thumbnail/youtube?q=x", nil)
			rec := httptest.NewRecorder()

			handler.YouTube(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("expected status %d got %d", tc.status, rec.Code)
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body["error"] == "" {
				t.Fatal("expected error message in body")
			}
			if len(history.lookups) != 1 || history.lookups[0].Outcome != tc.outcome {
				t.Fatalf("unexpected recorded lookups %+v", history.lookups)
			}
			if history.lookups[0].Error == "" {
				t.Fatal("expected error text to be recorded")
			}
		})
	}
}

func TestThumbnailHandlerNotFoundMessage(t *testing.T) {
	handler := ThumbnailHandler{Videos: &videoFetcherStub{err: youtube.ErrNotFound}}

	req := httptest.NewRequest(http.MethodGet, "/api/thumbnail/youtube?q=missing", nil)
	rec := httptest.NewRecorder()

	handler.YouTube(rec, req)

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] != "video not found" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestThumbnailHandlerRequiresQuery(t *testing.T) {
	fetcher := &videoFetcherStub{}
	handler := ThumbnailHandler{Videos: fetcher}

	req := httptest.NewRequest(http.MethodGet, "/api/thumbnail/youtube?q=%20%20", nil)
	rec := httptest.NewRecorder()

	handler.YouTube(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 got %d", rec.Code)
	}
	if len(fetcher.ids) != 0 {
		t.Fatal("expected provider not to be called")
	}
}

func TestThumbnailHandlerRateLimited(t *testing.T) {
	fetcher := &videoFetcherStub{}
	limiter := &limiterStub{allow: false}
	handler := ThumbnailHandler{Videos: fetcher, Limiter: limiter}

	req := httptest.NewRequest(http.MethodGet, "/api/thumbnail/youtube?q=abc", nil)
	req.RemoteAddr = "203.0.113.7:5555"
	rec := httptest.NewRecorder()

	handler.YouTube(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 got %d", rec.Code)
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "thumbnail:203.0.113.7" {
		t.Fatalf("unexpected limiter keys %v", limiter.keys)
	}
	if len(fetcher.ids) != 0 {
		t.Fatal("expected provider not to be called")
	}
}

func TestThumbnailHandlerHistoryFailureDoesNotFailRequest(t *testing.T) {
	handler := ThumbnailHandler{
		Videos:  &videoFetcherStub{record: sampleRecord()},
		History: &lookupRecorderStub{err: errors.New("queue full")},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/thumbnail/youtube?q=dQw4w9WgXcQ", nil)
	rec := httptest.NewRecorder()

	handler.YouTube(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}
}

func TestThumbnailHandlerMissingProviderAndMethod(t *testing.T) {
	handler := ThumbnailHandler{}

	rec := httptest.NewRecorder()
	handler.YouTube(rec, httptest.NewRequest(http.MethodGet, "/api/thumbnail/youtube?q=abc", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503 got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.YouTube(rec, httptest.NewRequest(http.MethodPost, "/api/thumbnail/youtube?q=abc", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405 got %d", rec.Code)
	}
}
