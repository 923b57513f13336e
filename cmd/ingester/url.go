package main

import (
	"context"
	"fmt"

	"codeberg.org/courseteen/server/internal/client"
	"codeberg.org/courseteen/server/internal/config"
	"codeberg.org/courseteen/server/internal/logger"
)

// asks the server to scrape and ingest flags.URL
func IngestURL(ctx context.Context, api *client.Client, flags config.Flags) error {
	if flags.URL == "" {
		return fmt.Errorf("--url is required")
	}

	logger.Info("starting url ingestion", "url", flags.URL)

	resp, err := api.IngestURL(ctx, flags.URL)
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", flags.URL, err)
	}

	logger.Info("successfully ingested page",
		"url", flags.URL,
		"chunks_added", resp.ChunksAdded,
		"total_chunks", resp.ChunksStored,
	)

	return nil
}
