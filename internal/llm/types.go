package llm

import "context"

// represents different LLM providers
type Provider string

const (
	ProviderLocal     Provider = "local"
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// generates embeddings from text; every vector has Dimension() components
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
}

// produces a completion for a prompt
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	Model() string
}

type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

type TextGenerationRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int
	Temperature  float32
	TopP         float32

	// grounding material and the raw question; remote providers already see
	// them inside Messages, the local generator works from these directly
	Documents []string
	Query     string
}

type TextGenerationResponse struct {
	Text  string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// holds configuration for LLM initialization
type Config struct {
	EmbedderProvider   Provider
	EmbedderAPIKey     string
	EmbedderModel      string // e.g., "text-embedding-3-small"
	EmbeddingDimension int

	GeneratorProvider    Provider
	GeneratorAPIKey      string
	GeneratorModel       string // e.g., "gpt-4o-mini"
	GeneratorMaxTokens   int
	GeneratorTemperature float32
}
