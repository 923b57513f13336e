package main

import (
	"context"
	"fmt"
	"os"

	"codeberg.org/courseteen/server/internal/client"
	"codeberg.org/courseteen/server/internal/config"
	"codeberg.org/courseteen/server/internal/logger"
)

// uploads the PDF at flags.Path
func IngestPDF(ctx context.Context, api *client.Client, flags config.Flags) error {
	if flags.Path == "" {
		return fmt.Errorf("--path is required")
	}

	file, err := os.Open(flags.Path)
	if err != nil {
		return fmt.Errorf("failed to open pdf: %w", err)
	}
	defer file.Close() //nolint:errcheck

	logger.Info("starting pdf ingestion", "path", flags.Path)

	resp, err := api.IngestPDF(ctx, flags.Path, file)
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", flags.Path, err)
	}

	logger.Info("successfully ingested pdf",
		"filename", resp.Filename,
		"chunks_added", resp.ChunksAdded,
		"total_chunks", resp.ChunksStored,
	)

	return nil
}
