package agent

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/courseteen/server/internal/emotion"
	"codeberg.org/courseteen/server/internal/llm"
	"codeberg.org/courseteen/server/internal/logger"
	"codeberg.org/courseteen/server/internal/retriever"
)

const NoDataAnswer = "⚠️ Please ingest some text first."

func New(ret Retriever, classifier emotion.Classifier, generator llm.TextGenerator, config Config) *Agent {
	defaults := DefaultConfig()

	if config.TopK <= 0 {
		config.TopK = defaults.TopK
	}

	if config.MaxContextChars <= 0 {
		config.MaxContextChars = defaults.MaxContextChars
	}

	if config.MaxTokens <= 0 {
		config.MaxTokens = defaults.MaxTokens
	}

	if config.Temperature <= 0 {
		config.Temperature = defaults.Temperature
	}

	if config.TopP <= 0 {
		config.TopP = defaults.TopP
	}

	return &Agent{
		retriever:  ret,
		classifier: classifier,
		generator:  generator,
		config:     config,
	}
}

// retrieves context for query, detects the asker's emotion and generates an answer
func (a *Agent) Ask(ctx context.Context, query string) (*AskResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	result, err := a.retrieve(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve context: %w", err)
	}

	if result.NoData {
		return &AskResponse{
			Answer: NoDataAnswer,
			Mood:   emotion.LabelNeutral,
			NoData: true,
		}, nil
	}

	mood := a.classify(ctx, query)
	chunks := result.Texts()

	prompt := buildPrompt(mood.Label, joinContext(chunks, a.config.MaxContextChars), query)

	response, err := a.generate(ctx, llm.TextGenerationRequest{
		Messages:    []llm.Message{{Role: "user", Content: prompt}},
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
		TopP:        a.config.TopP,
		Documents:   chunks,
		Query:       query,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	return &AskResponse{
		Answer:     emotion.Emoji(mood.Label) + " " + extractAnswer(response.Text),
		Mood:       mood.Label,
		Confidence: mood.Confidence(),
		Context:    chunks,
		Model:      a.generator.Model(),
	}, nil
}

func (a *Agent) retrieve(ctx context.Context, query string) (*retriever.QueryResult, error) {
	ctx, cancel := withOptionalTimeout(ctx, a.config.RetrievalTimeout)
	defer cancel()

	return a.retriever.Query(ctx, query, a.config.TopK)
}

// classification is best effort: on failure the answer is generated for a neutral mood
func (a *Agent) classify(ctx context.Context, query string) *emotion.Result {
	ctx, cancel := withOptionalTimeout(ctx, a.config.ClassifyTimeout)
	defer cancel()

	mood, err := a.classifier.Classify(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Warn("emotion classification failed, using neutral",
			"error", err,
		)

		return &emotion.Result{Label: emotion.LabelNeutral}
	}

	return mood
}

func (a *Agent) generate(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	ctx, cancel := withOptionalTimeout(ctx, a.config.GenerateTimeout)
	defer cancel()

	return a.generator.GenerateText(ctx, req)
}
