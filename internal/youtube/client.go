package youtube

import (
	"context"
	"log/slog"
	"time"

	"github.com/thumbcard/backend/internal/logging"
	"github.com/thumbcard/backend/internal/models"
)

// Client resolves provider video data into models.VideoRecord values.
// It keeps no state between calls and is safe for concurrent use.
type Client struct {
	source Source
}

// NewClient returns a Client reading from source.
func NewClient(source Source) *Client {
	return &Client{source: source}
}

// FetchVideo looks up id and returns its normalized record. The id is forwarded as is.
//
// It returns ErrNotFound when the provider has no item or omits the snippet, content
// details or statistics facet, and a *ValidationError when the assembled record does not
// fit the VideoRecord shape. Provider errors from the primary lookup are returned
// unchanged; channel branding failures only leave ChannelLogoURL empty.
func (c *Client) FetchVideo(ctx context.Context, id string) (models.VideoRecord, error) {
	if c == nil || c.source == nil {
		return models.VideoRecord{}, ErrProviderUnavailable
	}

	ctx, span := logging.StartSpan(ctx, "youtube.fetch_video")
	defer span.End()

	item, err := c.source.Video(ctx, id)
	if err != nil {
		return models.VideoRecord{}, err
	}
	if item == nil || item.Snippet == nil || item.ContentDetails == nil || item.Statistics == nil {
		return models.VideoRecord{}, ErrNotFound
	}

	cand := candidate{
		ID:           item.ID,
		Title:        item.Snippet.Title,
		ThumbnailURL: resolveThumbnail(item.Snippet.Thumbnails),
		ChannelName:  item.Snippet.ChannelTitle,
		ViewsCount:   parseViewCount(item.Statistics.ViewCount),
		PublishedAt:  item.Snippet.PublishedAt,
		Duration:     item.ContentDetails.Duration,
	}
	if err := validateCandidate(cand); err != nil {
		return models.VideoRecord{}, err
	}

	duration, ok := normalizeDuration(cand.Duration)
	if !ok {
		return models.VideoRecord{}, &ValidationError{
			VideoID: cand.ID,
			Fields:  []FieldError{{Field: "duration", Rule: "iso8601_time", Value: cand.Duration}},
		}
	}

	publishedAt, err := time.Parse(time.RFC3339, cand.PublishedAt)
	if err != nil {
		return models.VideoRecord{}, &ValidationError{
			VideoID: cand.ID,
			Fields:  []FieldError{{Field: "publishedAt", Rule: "datetime", Value: cand.PublishedAt}},
		}
	}

	return models.VideoRecord{
		Type:           models.ProviderYouTube,
		ID:             cand.ID,
		Title:          cand.Title,
		ThumbnailURL:   cand.ThumbnailURL,
		ChannelName:    cand.ChannelName,
		ChannelLogoURL: c.channelLogo(ctx, item.Snippet.ChannelID),
		Duration:       duration,
		ViewsCount:     cand.ViewsCount,
		PublishedAt:    publishedAt.UTC(),
	}, nil
}

func (c *Client) channelLogo(ctx context.Context, channelID string) string {
	ctx, span := logging.StartSpan(ctx, "youtube.fetch_channel")
	defer span.End()

	logger := logging.FromContext(ctx)

	channel, err := c.source.Channel(ctx, channelID)
	if err != nil {
		logger.Warn("channel branding lookup failed", slog.String("channelId", channelID), slog.Any("error", err))
		return ""
	}
	if channel == nil {
		logger.Debug("channel branding not found", slog.String("channelId", channelID))
		return ""
	}
	return channel.Thumbnails.Default
}
