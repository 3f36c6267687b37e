package handlers

import "net/http"

// RegisterRoutes wires HTTP handlers into the provided ServeMux.
func RegisterRoutes(mux *http.ServeMux, deps Dependencies) {
	health := HealthHandler{}
	thumbnails := ThumbnailHandler{Videos: deps.Videos, Limiter: deps.LookupLimiter, History: deps.History}
	catalog := WidgetHandler{}
	lookups := LookupHandler{Lookups: deps.Lookups, AdminTokenHash: deps.AdminTokenHash}
	publish := CardHandler{Storage: deps.Cards, MaxBytes: deps.CardMaxBytes}

	mux.HandleFunc("/healthz", health.Handle)
	mux.HandleFunc("/api/thumbnail/youtube", thumbnails.YouTube)
	mux.HandleFunc("/api/v1/widgets", catalog.List)
	mux.HandleFunc("/api/v1/lookups", lookups.List)
	mux.HandleFunc("/api/v1/cards", publish.Publish)
}

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Videos         VideoFetcher
	LookupLimiter  RateLimiter
	History        LookupRecorder
	Lookups        LookupLister
	AdminTokenHash string
	Cards          CardStorage
	CardMaxBytes   int64
}
