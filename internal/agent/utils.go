package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codeberg.org/courseteen/server/internal/config"
	"codeberg.org/courseteen/server/internal/retriever"
)

var (
	ErrEmptyQuery = fmt.Errorf("%w: query is empty", retriever.ErrValidation)
	ErrGeneration = errors.New("answer generation failed")
)

func DefaultConfig() Config {
	return Config{
		TopK:            3,
		MaxContextChars: 700,
		MaxTokens:       200,
		Temperature:     0.6,
		TopP:            0.9,
	}
}

// derives the agent configuration from the application config
func NewConfig(base *config.Config) Config {
	cfg := DefaultConfig()

	cfg.TopK = base.Retrieval.TopK
	cfg.MaxContextChars = base.Retrieval.MaxContextChars
	cfg.RetrievalTimeout = base.Timeouts.Embed
	cfg.ClassifyTimeout = base.Timeouts.Classify
	cfg.GenerateTimeout = base.Timeouts.Generate

	return cfg
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, d)
}
