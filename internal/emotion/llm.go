package emotion

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"codeberg.org/courseteen/server/internal/llm"
)

const classifierPrompt = `Classify the dominant emotion of the user's message.

Allowed labels: anger, joy, sadness, fear, love, surprise, neutral.

Return a JSON object with this structure:
{"label": "<one allowed label>", "score": <confidence between 0 and 1>}

Return ONLY valid JSON, no markdown or explanations.`

// LLMClassifier asks a text generator to label the message.
type LLMClassifier struct {
	generator llm.TextGenerator
}

func NewLLMClassifier(generator llm.TextGenerator) *LLMClassifier {
	return &LLMClassifier{generator: generator}
}

func (c *LLMClassifier) Classify(ctx context.Context, text string) (*Result, error) {
	resp, err := c.generator.GenerateText(ctx, llm.TextGenerationRequest{
		SystemPrompt: classifierPrompt,
		Messages:     []llm.Message{{Role: "user", Content: text}},
		MaxTokens:    50,
		Temperature:  0.01,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to classify emotion: %w", err)
	}

	var parsed Result
	if err := json.Unmarshal([]byte(stripFences(resp.Text)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse emotion JSON: %w", err)
	}

	parsed.Label = strings.ToLower(strings.TrimSpace(parsed.Label))
	if !slices.Contains(Labels, parsed.Label) {
		return &Result{Label: LabelNeutral, Score: 0}, nil
	}

	parsed.Score = min(max(parsed.Score, 0), 1)

	return &parsed, nil
}

// removes a surrounding markdown code fence if the model added one anyway
func stripFences(s string) string {
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
