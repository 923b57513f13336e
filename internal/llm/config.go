package llm

import "codeberg.org/courseteen/server/internal/config"

const (
	defaultOpenAIEmbeddingModel = "text-embedding-3-small"
	defaultOpenAIChatModel      = "gpt-4o-mini"
	defaultAnthropicModel       = "claude-3-5-haiku-20241022"
)

// derives the LLM configuration from the application config
func NewConfig(base *config.Config) *Config {
	embedderProvider := Provider(base.Providers.Embedder)
	generatorProvider := Provider(base.Providers.Generator)

	embedderModel := base.Providers.EmbedderModel
	if embedderModel == "" && embedderProvider == ProviderOpenAI {
		embedderModel = defaultOpenAIEmbeddingModel
	}

	generatorModel := base.Providers.GeneratorModel
	if generatorModel == "" {
		switch generatorProvider {
		case ProviderOpenAI:
			generatorModel = defaultOpenAIChatModel
		case ProviderAnthropic:
			generatorModel = defaultAnthropicModel
		}
	}

	return &Config{
		EmbedderProvider:     embedderProvider,
		EmbedderAPIKey:       getAPIKeyForProvider(embedderProvider, base),
		EmbedderModel:        embedderModel,
		EmbeddingDimension:   base.Providers.EmbeddingDimension,
		GeneratorProvider:    generatorProvider,
		GeneratorAPIKey:      getAPIKeyForProvider(generatorProvider, base),
		GeneratorModel:       generatorModel,
		GeneratorMaxTokens:   defaultMaxTokens,
		GeneratorTemperature: defaultTemperature,
	}
}
