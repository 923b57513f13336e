package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderLocal     = "local"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderLexicon   = "lexicon"
	ProviderLLM       = "llm"
)

// returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Port:           "8000",
		Environment:    "development",
		AllowedOrigins: []string{"*", "http://localhost:5173"},
		RateLimit:      "60-M",
		MaxUploadBytes: 20 << 20,
		Retrieval: RetrievalConfig{
			ChunkSize:       200,
			ChunkOverlap:    50,
			TopK:            3,
			MaxContextChars: 700,
			EmbedBatchSize:  64,
		},
		Providers: ProvidersConfig{
			Embedder:           ProviderLocal,
			EmbeddingDimension: 384,
			Generator:          ProviderLocal,
			Emotion:            ProviderLexicon,
		},
		Timeouts: TimeoutsConfig{
			Embed:    30 * time.Second,
			Generate: 60 * time.Second,
			Classify: 10 * time.Second,
			Scrape:   15 * time.Second,
		},
		Scraper: ScraperConfig{
			MinChars:  100,
			UserAgent: "Mozilla/5.0 (compatible; courseteen-bot/1.0)",
		},
	}
}

// loads configuration from .env, an optional yaml file and environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// checks invariants that would otherwise fail deep inside the pipeline
func (c *Config) Validate() error {
	r := c.Retrieval

	if r.ChunkSize <= 0 {
		return fmt.Errorf("CHUNK_SIZE must be positive, got %d", r.ChunkSize)
	}

	if r.ChunkOverlap < 0 || r.ChunkOverlap >= r.ChunkSize {
		return fmt.Errorf("CHUNK_OVERLAP must be in [0, %d), got %d", r.ChunkSize, r.ChunkOverlap)
	}

	if r.TopK <= 0 {
		return fmt.Errorf("RETRIEVAL_TOP_K must be positive, got %d", r.TopK)
	}

	if c.Providers.EmbeddingDimension <= 0 {
		return fmt.Errorf("EMBEDDING_DIMENSION must be positive, got %d", c.Providers.EmbeddingDimension)
	}

	switch c.Providers.Embedder {
	case ProviderLocal:
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable is required for the openai embedder")
		}
	default:
		return fmt.Errorf("unknown embedder provider: %s", c.Providers.Embedder)
	}

	switch c.Providers.Generator {
	case ProviderLocal:
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable is required for the openai generator")
		}
	case ProviderAnthropic:
		if c.AnthropicKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable is required for the anthropic generator")
		}
	default:
		return fmt.Errorf("unknown generator provider: %s", c.Providers.Generator)
	}

	switch c.Providers.Emotion {
	case ProviderLexicon, ProviderLLM:
	default:
		return fmt.Errorf("unknown emotion provider: %s", c.Providers.Emotion)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.Environment, "ENVIRONMENT")
	setString(&cfg.RateLimit, "RATE_LIMIT")
	setString(&cfg.Providers.Embedder, "EMBEDDER_PROVIDER")
	setString(&cfg.Providers.EmbedderModel, "EMBEDDER_MODEL")
	setString(&cfg.Providers.Generator, "GENERATOR_PROVIDER")
	setString(&cfg.Providers.GeneratorModel, "GENERATOR_MODEL")
	setString(&cfg.Providers.Emotion, "EMOTION_PROVIDER")
	setString(&cfg.Scraper.UserAgent, "SCRAPER_USER_AGENT")

	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AnthropicKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.AdminKey = os.Getenv("ADMIN_API_KEY")

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"CHUNK_SIZE", &cfg.Retrieval.ChunkSize},
		{"CHUNK_OVERLAP", &cfg.Retrieval.ChunkOverlap},
		{"RETRIEVAL_TOP_K", &cfg.Retrieval.TopK},
		{"MAX_CONTEXT_CHARS", &cfg.Retrieval.MaxContextChars},
		{"EMBED_BATCH_SIZE", &cfg.Retrieval.EmbedBatchSize},
		{"EMBEDDING_DIMENSION", &cfg.Providers.EmbeddingDimension},
		{"MIN_PAGE_CHARS", &cfg.Scraper.MinChars},
	}

	for _, i := range ints {
		if err := setInt(i.dst, i.key); err != nil {
			return err
		}
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"EMBED_TIMEOUT", &cfg.Timeouts.Embed},
		{"GENERATE_TIMEOUT", &cfg.Timeouts.Generate},
		{"CLASSIFY_TIMEOUT", &cfg.Timeouts.Classify},
		{"SCRAPE_TIMEOUT", &cfg.Timeouts.Scrape},
	}

	for _, d := range durations {
		if err := setDuration(d.dst, d.key); err != nil {
			return err
		}
	}

	if raw := os.Getenv("MAX_UPLOAD_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_BYTES: %w", err)
		}
		cfg.MaxUploadBytes = n
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}

	*dst = n

	return nil
}

func setDuration(dst *time.Duration, key string) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}

	*dst = d

	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
