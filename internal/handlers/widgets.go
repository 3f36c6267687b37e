package handlers

import (
	"net/http"

	"github.com/thumbcard/backend/internal/models"
	"github.com/thumbcard/backend/internal/widgets"
)

// WidgetHandler exposes the card editor catalog.
type WidgetHandler struct{}

type widgetCatalogResponse struct {
	Widgets  []models.Widget `json:"widgets"`
	Defaults []string        `json:"defaults"`
	Displays []string        `json:"displays"`
	Themes   []string        `json:"themes"`
	Formats  []string        `json:"formats"`
	Scales   []float64       `json:"scales"`
}

// List handles GET /api/v1/widgets.
func (WidgetHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	defaults := make([]string, 0, len(widgets.Defaults()))
	for _, widget := range widgets.Defaults() {
		defaults = append(defaults, widget.ID)
	}

	respondJSON(r.Context(), w, http.StatusOK, widgetCatalogResponse{
		Widgets:  widgets.All(),
		Defaults: defaults,
		Displays: widgets.Displays,
		Themes:   widgets.Themes,
		Formats:  widgets.Formats,
		Scales:   widgets.Scales,
	})
}
