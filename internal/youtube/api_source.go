package youtube

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

var (
	videoParts   = []string{"snippet", "contentDetails", "statistics"}
	channelParts = []string{"snippet"}
)

// APISource reads video and channel data from the YouTube Data API v3.
type APISource struct {
	service *ytapi.Service
}

// NewAPISource constructs a Source authenticated with apiKey. Extra options are applied
// after the key, which lets callers point the client at another endpoint.
func NewAPISource(ctx context.Context, apiKey string, opts ...option.ClientOption) (*APISource, error) {
	if apiKey == "" {
		return nil, errors.New("youtube: api key required")
	}

	all := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := ytapi.NewService(ctx, all...)
	if err != nil {
		return nil, err
	}
	return &APISource{service: service}, nil
}

// Video lists a single video by id. Provider errors are returned unchanged.
func (s *APISource) Video(ctx context.Context, id string) (*VideoItem, error) {
	if s == nil || s.service == nil {
		return nil, ErrProviderUnavailable
	}

	resp, err := s.service.Videos.List(videoParts).Id(id).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 || resp.Items[0] == nil {
		return nil, nil
	}

	v := resp.Items[0]
	item := &VideoItem{ID: v.Id}
	if v.Snippet != nil {
		item.Snippet = &Snippet{
			Title:        v.Snippet.Title,
			ChannelID:    v.Snippet.ChannelId,
			ChannelTitle: v.Snippet.ChannelTitle,
			PublishedAt:  v.Snippet.PublishedAt,
			Thumbnails:   convertThumbnails(v.Snippet.Thumbnails),
		}
	}
	if v.ContentDetails != nil {
		item.ContentDetails = &ContentDetails{Duration: v.ContentDetails.Duration}
	}
	if v.Statistics != nil {
		item.Statistics = &Statistics{ViewCount: strconv.FormatUint(v.Statistics.ViewCount, 10)}
	}
	return item, nil
}

// Channel lists a single channel's branding by id.
func (s *APISource) Channel(ctx context.Context, id string) (*ChannelItem, error) {
	if s == nil || s.service == nil {
		return nil, ErrProviderUnavailable
	}

	resp, err := s.service.Channels.List(channelParts).Id(id).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 || resp.Items[0] == nil {
		return nil, nil
	}

	ch := resp.Items[0]
	item := &ChannelItem{ID: ch.Id}
	if ch.Snippet != nil {
		item.Thumbnails = convertThumbnails(ch.Snippet.Thumbnails)
	}
	return item, nil
}

func convertThumbnails(in *ytapi.ThumbnailDetails) Thumbnails {
	if in == nil {
		return Thumbnails{}
	}
	return Thumbnails{
		Maxres:   thumbnailURL(in.Maxres),
		Standard: thumbnailURL(in.Standard),
		High:     thumbnailURL(in.High),
		Medium:   thumbnailURL(in.Medium),
		Default:  thumbnailURL(in.Default),
	}
}

func thumbnailURL(t *ytapi.Thumbnail) string {
	if t == nil {
		return ""
	}
	return t.Url
}
