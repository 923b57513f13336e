package retriever

import (
	"codeberg.org/courseteen/server/internal/chunker"
	"codeberg.org/courseteen/server/internal/config"
)

const defaultBatchSize = 64

func DefaultConfig() Config {
	return Config{
		Chunking:  chunker.DefaultOptions(),
		BatchSize: defaultBatchSize,
	}
}

// derives the pipeline configuration from the application config
func NewConfig(base *config.Config) Config {
	cfg := Config{
		Chunking: chunker.Options{
			Size:    base.Retrieval.ChunkSize,
			Overlap: base.Retrieval.ChunkOverlap,
		},
		BatchSize: base.Retrieval.EmbedBatchSize,
	}

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}

	return cfg
}
