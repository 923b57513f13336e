package config

import "time"

type Config struct {
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`

	// comma separated in env, list in the yaml file
	AllowedOrigins []string `yaml:"allowed_origins"`

	// ulule/limiter formatted rate, e.g. "60-M"; empty disables limiting
	RateLimit string `yaml:"rate_limit"`

	// upload limit for /ingest_pdf, in bytes
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	Retrieval RetrievalConfig `yaml:"retrieval"`
	Providers ProvidersConfig `yaml:"providers"`
	Timeouts  TimeoutsConfig  `yaml:"timeouts"`
	Scraper   ScraperConfig   `yaml:"scraper"`

	OpenAIKey    string `yaml:"-"`
	AnthropicKey string `yaml:"-"`

	// bearer token guarding DELETE /store; empty leaves it open
	AdminKey string `yaml:"-"`
}

type RetrievalConfig struct {
	ChunkSize       int `yaml:"chunk_size"`
	ChunkOverlap    int `yaml:"chunk_overlap"`
	TopK            int `yaml:"top_k"`
	MaxContextChars int `yaml:"max_context_chars"`
	EmbedBatchSize  int `yaml:"embed_batch_size"`
}

type ProvidersConfig struct {
	Embedder           string `yaml:"embedder"`
	EmbedderModel      string `yaml:"embedder_model"`
	EmbeddingDimension int    `yaml:"embedding_dimension"`
	Generator          string `yaml:"generator"`
	GeneratorModel     string `yaml:"generator_model"`
	Emotion            string `yaml:"emotion"`
}

type TimeoutsConfig struct {
	Embed    time.Duration `yaml:"embed"`
	Generate time.Duration `yaml:"generate"`
	Classify time.Duration `yaml:"classify"`
	Scrape   time.Duration `yaml:"scrape"`
}

type ScraperConfig struct {
	MinChars  int    `yaml:"min_chars"`
	UserAgent string `yaml:"user_agent"`
}

type Flags struct {
	Server  string
	Path    string
	URL     string
	Reset   bool
	Timeout time.Duration
}
