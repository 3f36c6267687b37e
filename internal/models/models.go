package models

import "time"

// Provider identifies the upstream video platform a record was resolved from.
type Provider string

const (
	ProviderYouTube Provider = "youtube"
)

// VideoRecord is the normalized video metadata rendered into a thumbnail card.
type VideoRecord struct {
	Type           Provider  `json:"type"`
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	ThumbnailURL   string    `json:"thumbnailUrl"`
	ChannelName    string    `json:"channelName"`
	ChannelLogoURL string    `json:"channelLogoUrl"`
	Duration       string    `json:"duration"`
	ViewsCount     int64     `json:"viewsCount"`
	PublishedAt    time.Time `json:"publishedAt"`
}

// Widget is an optional overlay element the card editor can toggle.
type Widget struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Lookup records the outcome of a single metadata request.
type Lookup struct {
	ID        string
	Query     string
	VideoID   string
	Outcome   string
	Error     string
	Latency   time.Duration
	CreatedAt time.Time
}

const (
	LookupOutcomeOK       = "ok"
	LookupOutcomeNotFound = "not_found"
	LookupOutcomeInvalid  = "invalid"
	LookupOutcomeError    = "error"
)

// PublishedCard describes a card image stored for sharing.
type PublishedCard struct {
	Key    string `json:"key"`
	URL    string `json:"url"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
