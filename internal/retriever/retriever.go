package retriever

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/courseteen/server/internal/chunker"
	"codeberg.org/courseteen/server/internal/llm"
	"codeberg.org/courseteen/server/internal/registry"
	"codeberg.org/courseteen/server/internal/vectorstore"
)

// creates an empty pipeline whose store dimension matches the embedder
func New(embedder llm.Embedder, config Config) (*Pipeline, error) {
	if embedder == nil {
		return nil, fmt.Errorf("%w: embedder is required", ErrValidation)
	}

	if err := config.Chunking.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if config.BatchSize <= 0 {
		config.BatchSize = defaultBatchSize
	}

	store, err := vectorstore.New(embedder.Dimension())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return &Pipeline{
		embedder: embedder,
		config:   config,
		store:    store,
		registry: registry.New(),
	}, nil
}

// chunks text, embeds every chunk and records all of them, or none on failure.
// returns the number of chunks added by this call.
func (p *Pipeline) Ingest(ctx context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("%w: text is empty", ErrValidation)
	}

	chunks, err := chunker.Chunk(text, p.config.Chunking)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	// embedding is the slow part and runs without holding the lock
	vectors, err := p.embedAll(ctx, chunks)
	if err != nil {
		return 0, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkAlignment(); err != nil {
		return 0, err
	}

	base := p.store.Len()

	for i, chunk := range chunks {
		ordinal, err := p.store.Insert(vectors[i])
		if err != nil {
			p.rollback(base)
			return 0, fmt.Errorf("%w: %w", ErrEmbedding, err)
		}

		if regOrdinal := p.registry.Append(chunk); regOrdinal != ordinal {
			p.rollback(base)
			return 0, fmt.Errorf("%w: store ordinal %d, registry ordinal %d", ErrIndexConsistency, ordinal, regOrdinal)
		}
	}

	return len(chunks), nil
}

// returns the k chunks nearest to text, or a NoData result when nothing is stored
func (p *Pipeline) Query(ctx context.Context, text string, k int) (*QueryResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: query is empty", ErrValidation)
	}

	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", ErrValidation, k)
	}

	if p.Len() == 0 {
		return &QueryResult{NoData: true}, nil
	}

	vector, err := p.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmbedding, err)
	}

	if len(vector) != p.store.Dimension() {
		return nil, fmt.Errorf("%w: query vector has %d dimensions, store has %d", ErrEmbedding, len(vector), p.store.Dimension())
	}

	matches, err := p.search(vector, k)
	if errors.Is(err, ErrEmptyStore) {
		// reset between the emptiness check and the search
		return &QueryResult{NoData: true}, nil
	}

	if err != nil {
		return nil, err
	}

	return &QueryResult{Matches: matches}, nil
}

// nearest-neighbour lookup for an already embedded query; fails with ErrEmptyStore
func (p *Pipeline) Search(vector []float32, k int) ([]Match, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", ErrValidation, k)
	}

	return p.search(vector, k)
}

func (p *Pipeline) search(vector []float32, k int) ([]Match, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if err := p.checkAlignment(); err != nil {
		return nil, err
	}

	hits, err := p.store.Search(vector, k)
	if err != nil {
		switch {
		case errors.Is(err, vectorstore.ErrEmpty):
			return nil, ErrEmptyStore
		case errors.Is(err, vectorstore.ErrDimensionMismatch):
			return nil, fmt.Errorf("%w: %w", ErrEmbedding, err)
		default:
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	matches := make([]Match, len(hits))
	for i, hit := range hits {
		text, err := p.registry.Get(hit.Ordinal)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIndexConsistency, err)
		}

		matches[i] = Match{
			Ordinal:  hit.Ordinal,
			Text:     text,
			Distance: hit.Distance,
		}
	}

	return matches, nil
}

// returns the number of stored chunks
func (p *Pipeline) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.store.Len()
}

func (p *Pipeline) Dimension() int {
	return p.store.Dimension()
}

func (p *Pipeline) Stats() Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return Stats{
		Chunks:    p.store.Len(),
		Dimension: p.store.Dimension(),
	}
}

// discards every stored chunk; the dimension is kept
func (p *Pipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.store.Reset()
	p.registry.Reset()
}
