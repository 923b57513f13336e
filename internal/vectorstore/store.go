package vectorstore

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidDimension  = errors.New("vector dimension must be positive")
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	ErrInvalidK          = errors.New("k must be positive")
	ErrEmpty             = errors.New("vector store is empty")
	ErrOutOfRange        = errors.New("ordinal out of range")
)

// Store is a flat, append-only collection of fixed-dimension vectors searched
// by exhaustive squared Euclidean distance. It does no locking of its own;
// callers that share a Store across goroutines must synchronize access.
type Store struct {
	dimension int
	vectors   [][]float32
}

func New(dimension int) (*Store, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, dimension)
	}

	return &Store{dimension: dimension}, nil
}

func (s *Store) Dimension() int {
	return s.dimension
}

func (s *Store) Len() int {
	return len(s.vectors)
}

// appends a copy of vec and returns its ordinal (the store length before the call)
func (s *Store) Insert(vec []float32) (int, error) {
	if len(vec) != s.dimension {
		return 0, fmt.Errorf("%w: expected %d, got %d", ErrDimensionMismatch, s.dimension, len(vec))
	}

	ordinal := len(s.vectors)
	s.vectors = append(s.vectors, slices.Clone(vec))

	return ordinal, nil
}

// returns up to k nearest vectors, ascending by distance, ties by ascending ordinal
func (s *Store) Search(query []float32, k int) ([]Hit, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	if len(query) != s.dimension {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrDimensionMismatch, s.dimension, len(query))
	}

	if len(s.vectors) == 0 {
		return nil, ErrEmpty
	}

	hits := make([]Hit, len(s.vectors))
	for i, v := range s.vectors {
		hits[i] = Hit{Ordinal: i, Distance: squaredL2(query, v)}
	}

	slices.SortFunc(hits, func(a, b Hit) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}

		return cmp.Compare(a.Ordinal, b.Ordinal)
	})

	return hits[:min(k, len(hits))], nil
}

// returns a copy of the vector stored at ordinal
func (s *Store) Vector(ordinal int) ([]float32, error) {
	if ordinal < 0 || ordinal >= len(s.vectors) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, ordinal, len(s.vectors))
	}

	return slices.Clone(s.vectors[ordinal]), nil
}

// drops every vector at or after ordinal n; used to roll back a partial batch
func (s *Store) Truncate(n int) {
	if n < 0 {
		n = 0
	}

	if n >= len(s.vectors) {
		return
	}

	clear(s.vectors[n:])
	s.vectors = s.vectors[:n]
}

// removes all vectors, keeping the dimension
func (s *Store) Reset() {
	s.vectors = nil
}

func squaredL2(a, b []float32) float64 {
	var sum float64

	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}

	return sum
}
