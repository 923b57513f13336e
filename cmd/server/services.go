package main

import (
	"fmt"

	"codeberg.org/courseteen/server/internal/agent"
	"codeberg.org/courseteen/server/internal/config"
	"codeberg.org/courseteen/server/internal/emotion"
	"codeberg.org/courseteen/server/internal/llm"
	"codeberg.org/courseteen/server/internal/logger"
	"codeberg.org/courseteen/server/internal/retriever"
	"codeberg.org/courseteen/server/internal/scraper"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config) (*Services, error) {
	llmClient, err := llm.NewLLMWithConfig(llm.NewConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	pipeline, err := retriever.New(llmClient, retriever.NewConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create retrieval pipeline: %w", err)
	}

	var classifier emotion.Classifier
	switch cfg.Providers.Emotion {
	case config.ProviderLLM:
		classifier = emotion.NewLLMClassifier(llmClient)
	default:
		classifier = emotion.NewLexiconClassifier()
	}

	agentClient := agent.New(pipeline, classifier, llmClient, agent.NewConfig(cfg))

	pageScraper := scraper.New(scraper.Config{
		MinChars:  cfg.Scraper.MinChars,
		UserAgent: cfg.Scraper.UserAgent,
		Timeout:   cfg.Timeouts.Scrape,
	})

	logger.Info("services initialized",
		"embedder", cfg.Providers.Embedder,
		"dimension", pipeline.Dimension(),
		"generator", llmClient.Model(),
		"emotion", cfg.Providers.Emotion,
	)

	return &Services{
		Agent:      agentClient,
		LLM:        llmClient,
		Pipeline:   pipeline,
		Classifier: classifier,
		Scraper:    pageScraper,
	}, nil
}
