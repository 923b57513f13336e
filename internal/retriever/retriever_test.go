package retriever

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/courseteen/server/internal/chunker"
	"codeberg.org/courseteen/server/internal/llm"
)

type mockEmbedder struct {
	dimension   int
	embedFunc   func(ctx context.Context, text string) ([]float32, error)
	embedCalled atomic.Int32
}

func (m *mockEmbedder) Dimension() int {
	return m.dimension
}

func (m *mockEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	m.embedCalled.Add(1)
	return m.embedFunc(ctx, text)
}

func (m *mockEmbedder) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))

	for i, text := range texts {
		v, err := m.GenerateEmbedding(ctx, text)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

func newHashPipeline(t *testing.T, opts chunker.Options) *Pipeline {
	t.Helper()

	embedder, err := llm.NewHashEmbedder(128)
	require.NoError(t, err)

	p, err := New(embedder, Config{Chunking: opts, BatchSize: 2})
	require.NoError(t, err)

	return p
}

func TestNew_Validation(t *testing.T) {
	embedder, err := llm.NewHashEmbedder(8)
	require.NoError(t, err)

	_, err = New(nil, DefaultConfig())
	assert.ErrorIs(t, err, ErrValidation)

	_, err = New(embedder, Config{Chunking: chunker.Options{Size: 3, Overlap: 3}})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = New(&mockEmbedder{dimension: 0}, DefaultConfig())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestIngestAndQuery(t *testing.T) {
	p := newHashPipeline(t, chunker.Options{Size: 4, Overlap: 1})
	ctx := context.Background()

	n, err := p.Ingest(ctx, "the quick brown fox jumps over the lazy dog")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, p.Len())

	result, err := p.Query(ctx, "lazy dog", 1)
	require.NoError(t, err)
	require.False(t, result.NoData)
	require.Len(t, result.Matches, 1)

	assert.Equal(t, 2, result.Matches[0].Ordinal)
	assert.Equal(t, "the lazy dog", result.Matches[0].Text)
	assert.Equal(t, []string{"the lazy dog"}, result.Texts())
}

func TestQuery_ResultsOrderedAndBounded(t *testing.T) {
	p := newHashPipeline(t, chunker.Options{Size: 4, Overlap: 1})
	ctx := context.Background()

	_, err := p.Ingest(ctx, "the quick brown fox jumps over the lazy dog")
	require.NoError(t, err)

	result, err := p.Query(ctx, "quick fox", 10)
	require.NoError(t, err)
	require.Len(t, result.Matches, 3, "k larger than the store returns everything")

	for i := 1; i < len(result.Matches); i++ {
		prev, cur := result.Matches[i-1], result.Matches[i]
		assert.True(t, prev.Distance < cur.Distance ||
			(prev.Distance == cur.Distance && prev.Ordinal < cur.Ordinal),
			"matches out of order at %d", i)
	}

	again, err := p.Query(ctx, "quick fox", 10)
	require.NoError(t, err)
	assert.Equal(t, result, again, "queries are deterministic")
}

func TestQuery_EmptyStoreReturnsNoData(t *testing.T) {
	embedder := &mockEmbedder{
		dimension: 4,
		embedFunc: func(context.Context, string) ([]float32, error) {
			return []float32{1, 0, 0, 0}, nil
		},
	}

	p, err := New(embedder, DefaultConfig())
	require.NoError(t, err)

	result, err := p.Query(context.Background(), "anything at all", 3)
	require.NoError(t, err)
	assert.True(t, result.NoData)
	assert.Empty(t, result.Matches)
	assert.Equal(t, int32(0), embedder.embedCalled.Load(), "empty store must not call the embedder")
	assert.Equal(t, 0, p.Len())
}

func TestQuery_Validation(t *testing.T) {
	p := newHashPipeline(t, chunker.DefaultOptions())

	_, err := p.Query(context.Background(), "  ", 3)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = p.Query(context.Background(), "hello", 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestIngest_EmptyText(t *testing.T) {
	p := newHashPipeline(t, chunker.DefaultOptions())

	_, err := p.Ingest(context.Background(), " \n\t ")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, p.Len())
}

func TestIngest_EmbedderFailureLeavesStoreUntouched(t *testing.T) {
	calls := 0
	embedder := &mockEmbedder{
		dimension: 2,
		embedFunc: func(_ context.Context, text string) ([]float32, error) {
			calls++
			if calls == 3 {
				return nil, errors.New("embedding service unavailable")
			}

			return []float32{float32(len(text)), 1}, nil
		},
	}

	p, err := New(embedder, Config{Chunking: chunker.Options{Size: 2, Overlap: 0}, BatchSize: 1})
	require.NoError(t, err)

	_, err = p.Ingest(context.Background(), "one two three four five six")
	require.ErrorIs(t, err, ErrEmbedding)
	assert.Contains(t, err.Error(), "embedding service unavailable")
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, p.registry.Len())
}

func TestIngest_WrongDimension(t *testing.T) {
	embedder := &mockEmbedder{
		dimension: 3,
		embedFunc: func(context.Context, string) ([]float32, error) {
			return []float32{1, 2}, nil
		},
	}

	p, err := New(embedder, DefaultConfig())
	require.NoError(t, err)

	_, err = p.Ingest(context.Background(), "some text")
	assert.ErrorIs(t, err, ErrEmbedding)
	assert.Equal(t, 0, p.Len())
}

func TestQuery_EmbedderFailure(t *testing.T) {
	fail := false
	embedder := &mockEmbedder{
		dimension: 2,
		embedFunc: func(context.Context, string) ([]float32, error) {
			if fail {
				return nil, errors.New("boom")
			}

			return []float32{1, 1}, nil
		},
	}

	p, err := New(embedder, DefaultConfig())
	require.NoError(t, err)

	_, err = p.Ingest(context.Background(), "hello world")
	require.NoError(t, err)

	fail = true

	_, err = p.Query(context.Background(), "hello", 1)
	assert.ErrorIs(t, err, ErrEmbedding)
	assert.Equal(t, 1, p.Len())
}

func TestSearch_EmptyStore(t *testing.T) {
	p := newHashPipeline(t, chunker.DefaultOptions())

	_, err := p.Search(make([]float32, 128), 1)
	assert.ErrorIs(t, err, ErrEmptyStore)

	_, err = p.Search(make([]float32, 128), 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestIndexConsistencyViolation(t *testing.T) {
	p := newHashPipeline(t, chunker.DefaultOptions())
	ctx := context.Background()

	_, err := p.Ingest(ctx, "alpha beta gamma")
	require.NoError(t, err)

	// simulate corruption: a chunk without a vector
	p.registry.Append("orphan")

	_, err = p.Query(ctx, "alpha", 1)
	assert.ErrorIs(t, err, ErrIndexConsistency)

	_, err = p.Ingest(ctx, "delta epsilon")
	assert.ErrorIs(t, err, ErrIndexConsistency)
	assert.Equal(t, 1, p.Len())
}

func TestReset(t *testing.T) {
	p := newHashPipeline(t, chunker.DefaultOptions())
	ctx := context.Background()

	_, err := p.Ingest(ctx, "first document")
	require.NoError(t, err)

	p.Reset()
	assert.Equal(t, Stats{Chunks: 0, Dimension: 128}, p.Stats())

	result, err := p.Query(ctx, "first", 1)
	require.NoError(t, err)
	assert.True(t, result.NoData)

	n, err := p.Ingest(ctx, "second document")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	result, err = p.Query(ctx, "second", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Matches[0].Ordinal)
}

func TestConcurrentIngestKeepsAlignment(t *testing.T) {
	p := newHashPipeline(t, chunker.Options{Size: 3, Overlap: 1})
	embedder, err := llm.NewHashEmbedder(128)
	require.NoError(t, err)

	ctx := context.Background()
	const docsPerWriter = 25

	var wg sync.WaitGroup
	var added atomic.Int64

	for writer := range 2 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range docsPerWriter {
				text := fmt.Sprintf("writer %d document %d has a handful of words", writer, i)

				n, err := p.Ingest(ctx, text)
				assert.NoError(t, err)
				added.Add(int64(n))
			}
		}()
	}

	// concurrent readers never see a half-applied batch
	for range 2 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range docsPerWriter {
				_, err := p.Query(ctx, "document words", 3)
				assert.NoError(t, err)
			}
		}()
	}

	wg.Wait()

	require.Equal(t, int(added.Load()), p.Len())
	require.Equal(t, p.store.Len(), p.registry.Len())

	for i := range p.Len() {
		text, err := p.registry.Get(i)
		require.NoError(t, err)

		stored, err := p.store.Vector(i)
		require.NoError(t, err)

		want, err := embedder.GenerateEmbedding(ctx, text)
		require.NoError(t, err)

		assert.Equal(t, want, stored, "ordinal %d is not the embedding of its chunk", i)
	}
}
