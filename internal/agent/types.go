package agent

import (
	"context"
	"time"

	"codeberg.org/courseteen/server/internal/emotion"
	"codeberg.org/courseteen/server/internal/llm"
	"codeberg.org/courseteen/server/internal/retriever"
)

// interface for chunk retrieval
type Retriever interface {
	Query(ctx context.Context, text string, k int) (*retriever.QueryResult, error)
}

// answers questions from retrieved context, in a tone matched to the asker's mood
type Agent struct {
	retriever  Retriever
	classifier emotion.Classifier
	generator  llm.TextGenerator
	config     Config
}

type Config struct {
	TopK             int
	MaxContextChars  int
	MaxTokens        int
	Temperature      float32
	TopP             float32
	RetrievalTimeout time.Duration
	ClassifyTimeout  time.Duration
	GenerateTimeout  time.Duration
}

// contains the answer and the detected mood
type AskResponse struct {
	Answer     string   `json:"answer"`
	Mood       string   `json:"mood"`
	Confidence float64  `json:"confidence,omitempty"`
	Context    []string `json:"context,omitempty"`
	Model      string   `json:"model,omitempty"`
	NoData     bool     `json:"-"`
}
