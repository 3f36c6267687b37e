package widgets

import "github.com/thumbcard/backend/internal/models"

// Widgets available on a thumbnail card.
var (
	ChannelName      = models.Widget{ID: "channel-name", Label: "Channel name"}
	ChannelLogo      = models.Widget{ID: "channel-logo", Label: "Channel logo"}
	VideoDuration    = models.Widget{ID: "video-duration", Label: "Video duration"}
	VideoViews       = models.Widget{ID: "video-views", Label: "Views"}
	VideoPublishedAt = models.Widget{ID: "video-published-at", Label: "Published at"}
)

// Display modes, themes and export settings understood by the card editor.
var (
	Displays = []string{"block", "row"}
	Themes   = []string{"light", "dark"}
	Formats  = []string{"png", "jpg", "webp"}
	Scales   = []float64{0.5, 0.75, 1, 1.5, 2, 3}
)

// All returns every widget in display order.
func All() []models.Widget {
	return []models.Widget{ChannelName, ChannelLogo, VideoDuration, VideoViews, VideoPublishedAt}
}

// Defaults returns the widgets enabled on a fresh card.
func Defaults() []models.Widget {
	return All()
}

// IsActive reports whether any of ids is present in active.
func IsActive(active []models.Widget, ids ...string) bool {
	for _, w := range active {
		for _, id := range ids {
			if w.ID == id {
				return true
			}
		}
	}
	return false
}

// Lookup returns the catalog widget with the given id.
func Lookup(id string) (models.Widget, bool) {
	for _, w := range All() {
		if w.ID == id {
			return w, true
		}
	}
	return models.Widget{}, false
}
