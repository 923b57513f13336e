package emotion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/courseteen/server/internal/llm"
)

type mockGenerator struct {
	generateTextFunc func(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error)
}

func (m *mockGenerator) GenerateText(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	return m.generateTextFunc(ctx, req)
}

func (m *mockGenerator) Model() string {
	return "mock"
}

func replying(text string) *mockGenerator {
	return &mockGenerator{
		generateTextFunc: func(context.Context, llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
			return &llm.TextGenerationResponse{Text: text}, nil
		},
	}
}

func TestLexiconClassifier(t *testing.T) {
	c := NewLexiconClassifier()

	tests := []struct {
		text  string
		label string
		score float64
	}{
		{"I am so happy and excited today!", LabelJoy, 1},
		{"I'm scared and anxious about the exam, and a bit sad", LabelFear, 2.0 / 3.0},
		{"This is FURIOUS making, I hate it", LabelAnger, 1},
		{"What is the capital of France?", LabelNeutral, 0},
		{"", LabelNeutral, 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			result, err := c.Classify(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.label, result.Label)
			assert.InDelta(t, tt.score, result.Score, 1e-9)
		})
	}
}

func TestLexiconClassifier_TieGoesToFirstLabel(t *testing.T) {
	result, err := NewLexiconClassifier().Classify(context.Background(), "happy but sad")
	require.NoError(t, err)
	assert.Equal(t, LabelJoy, result.Label)
	assert.InDelta(t, 0.5, result.Score, 1e-9)
}

func TestLLMClassifier(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		label string
		score float64
	}{
		{"plain json", `{"label":"Sadness","score":0.83}`, LabelSadness, 0.83},
		{"fenced json", "```json\n{\"label\":\"love\",\"score\":0.5}\n```", LabelLove, 0.5},
		{"unknown label", `{"label":"boredom","score":0.9}`, LabelNeutral, 0},
		{"score clamped", `{"label":"joy","score":7}`, LabelJoy, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewLLMClassifier(replying(tt.reply)).Classify(context.Background(), "hi")
			require.NoError(t, err)
			assert.Equal(t, tt.label, result.Label)
			assert.InDelta(t, tt.score, result.Score, 1e-9)
		})
	}
}

func TestLLMClassifier_Errors(t *testing.T) {
	_, err := NewLLMClassifier(replying("not json")).Classify(context.Background(), "hi")
	assert.Error(t, err)

	failing := &mockGenerator{
		generateTextFunc: func(context.Context, llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
			return nil, errors.New("rate limited")
		},
	}

	_, err = NewLLMClassifier(failing).Classify(context.Background(), "hi")
	assert.ErrorContains(t, err, "rate limited")
}

func TestEmoji(t *testing.T) {
	assert.Equal(t, "😠", Emoji("anger"))
	assert.Equal(t, "😄", Emoji("JOY"))
	assert.Equal(t, "❤️", Emoji(LabelLove))
	assert.Equal(t, "🙂", Emoji(LabelNeutral))
	assert.Equal(t, "🙂", Emoji("confusion"))
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, 83.46, (&Result{Score: 0.834567}).Confidence())
	assert.Equal(t, 0.0, (&Result{}).Confidence())
}
