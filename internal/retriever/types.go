package retriever

import (
	"sync"

	"codeberg.org/courseteen/server/internal/chunker"
	"codeberg.org/courseteen/server/internal/llm"
	"codeberg.org/courseteen/server/internal/registry"
	"codeberg.org/courseteen/server/internal/vectorstore"
)

// Pipeline owns one vector store and its chunk registry and keeps them
// index-aligned: ordinal i in the store always maps to chunk i in the registry.
type Pipeline struct {
	mu       sync.RWMutex
	embedder llm.Embedder
	config   Config
	store    *vectorstore.Store
	registry *registry.Registry
}

type Config struct {
	Chunking  chunker.Options
	BatchSize int // chunks per embedder call during ingest
}

// a retrieved chunk
type Match struct {
	Ordinal  int     `json:"ordinal"`
	Text     string  `json:"text"`
	Distance float64 `json:"distance"`
}

// QueryResult is either a list of matches (nearest first) or, when nothing has
// been ingested yet, an empty result with NoData set.
type QueryResult struct {
	Matches []Match
	NoData  bool
}

func (r *QueryResult) Texts() []string {
	texts := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		texts[i] = m.Text
	}

	return texts
}

type Stats struct {
	Chunks    int `json:"chunks"`
	Dimension int `json:"dimension"`
}
