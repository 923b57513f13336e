package main

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/courseteen/server/internal/chunker"
	"codeberg.org/courseteen/server/internal/client"
	"codeberg.org/courseteen/server/internal/config"
	"codeberg.org/courseteen/server/internal/logger"
)

// sends every text document under flags.Path to the server, one request per file
func IngestText(ctx context.Context, api *client.Client, flags config.Flags) error {
	logger.Info("starting text ingestion", "path", flags.Path, "server", api.BaseURL())

	docs, errs := chunker.CollectDocuments(flags.Path)

	if len(errs) > 0 {
		logger.Warn("encountered errors while reading documents", "error_count", len(errs))
	}

	if len(docs) == 0 {
		return fmt.Errorf("no documents found under %s", flags.Path)
	}

	summary := ingestDocuments(ctx, api, docs)

	logger.Info("successfully ingested documents",
		"documents", summary.ingested,
		"skipped", summary.skipped,
		"failed", summary.failed,
		"chunks_added", summary.chunksAdded,
		"total_chunks", summary.chunksStored,
	)

	if summary.ingested == 0 && summary.failed > 0 {
		return fmt.Errorf("all %d documents failed to ingest", summary.failed)
	}

	return nil
}

type ingestSummary struct {
	ingested     int
	skipped      int
	failed       int
	chunksAdded  int
	chunksStored int
}

// posts each non-empty document; failures are logged and counted, not fatal
func ingestDocuments(ctx context.Context, api *client.Client, docs []chunker.Document) ingestSummary {
	var summary ingestSummary

	for _, doc := range docs {
		if strings.TrimSpace(doc.Content) == "" {
			logger.Debug("skipping empty document", "name", doc.Name)
			summary.skipped++
			continue
		}

		resp, err := api.IngestText(ctx, doc.Content)
		if err != nil {
			logger.ErrorErr(err, "failed to ingest document", "name", doc.Name)
			summary.failed++
			continue
		}

		summary.ingested++
		summary.chunksAdded += resp.ChunksAdded
		summary.chunksStored = resp.ChunksStored

		logger.Info("ingested document", "name", doc.Name, "chunks", resp.ChunksAdded)
	}

	return summary
}
