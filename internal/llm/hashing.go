package llm

import (
	"context"
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}]+)*`)

// HashEmbedder is an offline embedder that projects word unigrams and bigrams
// into a fixed number of signed buckets (the hashing trick) and L2-normalizes
// the result. Identical text always yields the identical vector.
type HashEmbedder struct {
	dimension int
}

func NewHashEmbedder(dimension int) (*HashEmbedder, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("embedding dimension must be positive, got %d", dimension)
	}

	return &HashEmbedder{dimension: dimension}, nil
}

func (e *HashEmbedder) Dimension() int {
	return e.dimension
}

func (e *HashEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vec := make([]float32, e.dimension)
	tokens := tokenize(text)

	for i, tok := range tokens {
		e.add(vec, tok, 1)

		if i > 0 {
			e.add(vec, tokens[i-1]+" "+tok, 0.5)
		}
	}

	normalize(vec)

	return vec, nil
}

func (e *HashEmbedder) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))

	for i, text := range texts {
		vec, err := e.GenerateEmbedding(ctx, text)
		if err != nil {
			return nil, err
		}

		out[i] = vec
	}

	return out, nil
}

// adds weight to the bucket of feature, with a sign taken from the top hash bit
func (e *HashEmbedder) add(vec []float32, feature string, weight float32) {
	h := hashString(feature)
	idx := int(h % uint64(e.dimension))

	if h>>63 == 1 {
		weight = -weight
	}

	vec[idx] += weight
}

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // hash.Hash.Write never returns an error
	return h.Sum64()
}
