package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/thumbcard/backend/internal/cards"
	"github.com/thumbcard/backend/internal/logging"
	"github.com/thumbcard/backend/internal/models"
)

const defaultCardMaxBytes = 10 << 20

// CardHandler publishes exported card images to object storage.
type CardHandler struct {
	Storage  CardStorage
	MaxBytes int64
}

// Publish handles POST /api/v1/cards?format=png|jpg|webp&title=....
func (h CardHandler) Publish(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Storage == nil {
		respondError(ctx, w, http.StatusServiceUnavailable, "card storage unavailable")
		return
	}

	format := cards.NormalizeFormat(r.URL.Query().Get("format"))
	contentType, err := cards.ContentType(format)
	if err != nil {
		respondError(ctx, w, http.StatusBadRequest, "format must be one of png, jpg, webp")
		return
	}

	maxBytes := h.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultCardMaxBytes
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(ctx, w, http.StatusRequestEntityTooLarge, "card image too large")
			return
		}
		logger.Warn("read card body", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	info, err := cards.Inspect(data, format)
	switch {
	case errors.Is(err, cards.ErrEmptyImage):
		respondError(ctx, w, http.StatusBadRequest, "card image is empty")
		return
	case err != nil:
		logger.Warn("card image rejected", "format", format, "error", err)
		respondError(ctx, w, http.StatusUnsupportedMediaType, "card image does not match format")
		return
	}

	key := cards.ObjectKey(r.URL.Query().Get("title"), info.Format)
	location, err := h.Storage.Save(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		logger.Error("publish card", "key", key, "error", err)
		respondError(ctx, w, http.StatusBadGateway, "failed to publish card")
		return
	}

	logger.Info("card published", "key", key, "bytes", len(data))
	respondJSON(ctx, w, http.StatusCreated, models.PublishedCard{
		Key:    key,
		URL:    location,
		Format: info.Format,
		Width:  info.Width,
		Height: info.Height,
	})
}
