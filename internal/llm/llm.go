package llm

import (
	"fmt"
)

// bundles the embedder and text generator selected by configuration
type CompositeLLM struct {
	Embedder
	TextGenerator
}

// creates the configured embedder and generator
func NewLLMWithConfig(config *Config) (*CompositeLLM, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	embedder, err := NewEmbedder(config)
	if err != nil {
		return nil, err
	}

	generator, err := NewGenerator(config)
	if err != nil {
		return nil, err
	}

	return &CompositeLLM{
		Embedder:      embedder,
		TextGenerator: generator,
	}, nil
}

// creates the embedder for config.EmbedderProvider
func NewEmbedder(config *Config) (Embedder, error) {
	switch config.EmbedderProvider {
	case ProviderLocal, "":
		return NewHashEmbedder(config.EmbeddingDimension)
	case ProviderOpenAI:
		return NewOpenAIEmbedder(OpenAIConfig{
			APIKey:    config.EmbedderAPIKey,
			Model:     config.EmbedderModel,
			Dimension: config.EmbeddingDimension,
		})
	default:
		return nil, fmt.Errorf("unsupported embedder provider: %s", config.EmbedderProvider)
	}
}

// creates the text generator for config.GeneratorProvider
func NewGenerator(config *Config) (TextGenerator, error) {
	switch config.GeneratorProvider {
	case ProviderLocal, "":
		return NewLocalGenerator(), nil
	case ProviderAnthropic:
		return NewAnthropicGenerator(AnthropicConfig{
			APIKey:      config.GeneratorAPIKey,
			Model:       config.GeneratorModel,
			MaxTokens:   config.GeneratorMaxTokens,
			Temperature: config.GeneratorTemperature,
		}), nil
	case ProviderOpenAI:
		return NewOpenAIGenerator(OpenAIConfig{
			APIKey: config.GeneratorAPIKey,
			Model:  config.GeneratorModel,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", config.GeneratorProvider)
	}
}
