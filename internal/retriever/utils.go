package retriever

import (
	"context"
	"fmt"
)

// embeds chunks in batches and checks every vector against the store dimension
func (p *Pipeline) embedAll(ctx context.Context, chunks []string) ([][]float32, error) {
	dim := p.store.Dimension()
	vectors := make([][]float32, 0, len(chunks))

	for start := 0; start < len(chunks); start += p.config.BatchSize {
		end := min(start+p.config.BatchSize, len(chunks))

		batch, err := p.embedder.GenerateEmbeddings(ctx, chunks[start:end])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEmbedding, err)
		}

		if len(batch) != end-start {
			return nil, fmt.Errorf("%w: expected %d vectors, got %d", ErrEmbedding, end-start, len(batch))
		}

		for i, v := range batch {
			if len(v) != dim {
				return nil, fmt.Errorf("%w: chunk %d has %d dimensions, store has %d", ErrEmbedding, start+i, len(v), dim)
			}
		}

		vectors = append(vectors, batch...)
	}

	return vectors, nil
}

// caller must hold p.mu
func (p *Pipeline) checkAlignment() error {
	if s, r := p.store.Len(), p.registry.Len(); s != r {
		return fmt.Errorf("%w: store has %d vectors, registry has %d chunks", ErrIndexConsistency, s, r)
	}

	return nil
}

// caller must hold p.mu for writing
func (p *Pipeline) rollback(n int) {
	p.store.Truncate(n)
	p.registry.Truncate(n)
}
