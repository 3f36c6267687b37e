package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/thumbcard/backend/internal/config"
	"github.com/thumbcard/backend/internal/logging"
	"github.com/thumbcard/backend/internal/youtube"
)

// runFetch resolves a single video and prints the record as indented JSON.
func runFetch(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return errors.New("expected a YouTube url or video id")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	ctx = logging.WithLogger(ctx, logging.New(os.Stderr, level))

	client, err := newYouTubeClient(ctx, cfg)
	if err != nil {
		return err
	}

	record, err := client.FetchVideo(ctx, youtube.ExtractVideoID(args[0]))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}
