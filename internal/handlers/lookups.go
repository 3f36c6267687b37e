package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/thumbcard/backend/internal/logging"
	"github.com/thumbcard/backend/internal/models"
)

const (
	defaultLookupLimit = 50
	maxLookupLimit     = 500
)

// LookupHandler exposes recent lookup history to operators holding the admin token.
type LookupHandler struct {
	Lookups        LookupLister
	AdminTokenHash string
}

type lookupResponse struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	VideoID   string    `json:"videoId"`
	Outcome   string    `json:"outcome"`
	Error     string    `json:"error,omitempty"`
	LatencyMS int64     `json:"latencyMs"`
	CreatedAt time.Time `json:"createdAt"`
}

// List handles GET /api/v1/lookups?limit=N.
func (h LookupHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Lookups == nil || h.AdminTokenHash == "" {
		http.NotFound(w, r)
		return
	}

	token, ok := bearerToken(r)
	if !ok {
		respondError(ctx, w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.AdminTokenHash), []byte(token)); err != nil {
		logger.Warn("lookup history token mismatch")
		respondError(ctx, w, http.StatusUnauthorized, "invalid token")
		return
	}

	limit := defaultLookupLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(ctx, w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(parsed, maxLookupLimit)
	}

	lookups, err := h.Lookups.ListRecent(ctx, limit)
	if err != nil {
		logger.Error("list lookups", "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "failed to load lookups")
		return
	}

	out := make([]lookupResponse, 0, len(lookups))
	for _, l := range lookups {
		out = append(out, toLookupResponse(l))
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"lookups": out})
}

func toLookupResponse(l models.Lookup) lookupResponse {
	return lookupResponse{
		ID:        l.ID,
		Query:     l.Query,
		VideoID:   l.VideoID,
		Outcome:   l.Outcome,
		Error:     l.Error,
		LatencyMS: l.Latency.Milliseconds(),
		CreatedAt: l.CreatedAt,
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
