package vectorstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, dim int, vectors ...[]float32) *Store {
	t.Helper()

	s, err := New(dim)
	require.NoError(t, err)

	for i, v := range vectors {
		ord, err := s.Insert(v)
		require.NoError(t, err)
		require.Equal(t, i, ord)
	}

	return s
}

func TestNew_InvalidDimension(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = New(-4)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestInsert_ReturnsSequentialOrdinals(t *testing.T) {
	s := newStore(t, 2)

	for i := range 5 {
		ord, err := s.Insert([]float32{float32(i), 0})
		require.NoError(t, err)
		assert.Equal(t, i, ord)
	}

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 2, s.Dimension())
}

func TestInsert_DimensionMismatch(t *testing.T) {
	s := newStore(t, 3)

	_, err := s.Insert([]float32{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Equal(t, 0, s.Len(), "failed insert must not change the store")
}

func TestInsert_CopiesInput(t *testing.T) {
	s := newStore(t, 2)

	v := []float32{1, 1}
	_, err := s.Insert(v)
	require.NoError(t, err)

	v[0] = 99

	stored, err := s.Vector(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1}, stored)
}

func TestSearch_OrdersByDistance(t *testing.T) {
	s := newStore(t, 2,
		[]float32{10, 10},
		[]float32{1, 0},
		[]float32{3, 4},
		[]float32{0, 0},
	)

	hits, err := s.Search([]float32{0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	assert.Equal(t, []Hit{
		{Ordinal: 3, Distance: 0},
		{Ordinal: 1, Distance: 1},
		{Ordinal: 2, Distance: 25},
	}, hits)
}

func TestSearch_TiesBrokenByOrdinal(t *testing.T) {
	s := newStore(t, 2,
		[]float32{0, 1},
		[]float32{1, 0},
		[]float32{0, -1},
		[]float32{-1, 0},
	)

	hits, err := s.Search([]float32{0, 0}, 4)
	require.NoError(t, err)

	ordinals := make([]int, len(hits))
	for i, h := range hits {
		ordinals[i] = h.Ordinal
		assert.Equal(t, 1.0, h.Distance)
	}

	assert.Equal(t, []int{0, 1, 2, 3}, ordinals)
}

func TestSearch_KLargerThanStore(t *testing.T) {
	s := newStore(t, 1, []float32{1}, []float32{2})

	hits, err := s.Search([]float32{0}, 10)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestSearch_Errors(t *testing.T) {
	empty := newStore(t, 2)

	_, err := empty.Search([]float32{0, 0}, 1)
	assert.ErrorIs(t, err, ErrEmpty)

	s := newStore(t, 2, []float32{1, 1})

	_, err = s.Search([]float32{0, 0}, 0)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = s.Search([]float32{0}, 1)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestSearch_IsPureAndDeterministic(t *testing.T) {
	s := newStore(t, 3,
		[]float32{0.1, 0.2, 0.3},
		[]float32{0.3, 0.2, 0.1},
		[]float32{0.2, 0.2, 0.2},
	)

	query := []float32{0.25, 0.2, 0.15}

	first, err := s.Search(query, 2)
	require.NoError(t, err)

	second, err := s.Search(query, 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 3, s.Len())
}

func TestVector_OutOfRange(t *testing.T) {
	s := newStore(t, 1, []float32{1})

	_, err := s.Vector(1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = s.Vector(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTruncateAndReset(t *testing.T) {
	s := newStore(t, 1, []float32{1}, []float32{2}, []float32{3})

	s.Truncate(5)
	assert.Equal(t, 3, s.Len())

	s.Truncate(1)
	assert.Equal(t, 1, s.Len())

	ord, err := s.Insert([]float32{7})
	require.NoError(t, err)
	assert.Equal(t, 1, ord)

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, s.Dimension())
}
