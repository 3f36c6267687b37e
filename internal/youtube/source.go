package youtube

import "context"

// Thumbnails lists the thumbnail URLs a provider returned, keyed by size.
// Missing sizes are left empty.
type Thumbnails struct {
	Maxres   string
	Standard string
	High     string
	Medium   string
	Default  string
}

// Snippet is the descriptive facet of a video.
type Snippet struct {
	Title        string
	ChannelID    string
	ChannelTitle string
	PublishedAt  string
	Thumbnails   Thumbnails
}

// ContentDetails carries the encoded video duration.
type ContentDetails struct {
	Duration string
}

// Statistics carries the view count exactly as the provider encodes it.
type Statistics struct {
	ViewCount string
}

// VideoItem is a raw "list video by id" result. A nil facet means the provider omitted it.
type VideoItem struct {
	ID             string
	Snippet        *Snippet
	ContentDetails *ContentDetails
	Statistics     *Statistics
}

// ChannelItem is a raw "list channel by id" result.
type ChannelItem struct {
	ID         string
	Thumbnails Thumbnails
}

// Source performs the provider calls behind FetchVideo. Implementations return a nil item
// and a nil error when the provider has no match.
type Source interface {
	Video(ctx context.Context, id string) (*VideoItem, error)
	Channel(ctx context.Context, id string) (*ChannelItem, error)
}
