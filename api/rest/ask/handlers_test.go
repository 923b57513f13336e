package ask

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/courseteen/server/internal/agent"
	"codeberg.org/courseteen/server/internal/chunker"
	"codeberg.org/courseteen/server/internal/emotion"
	"codeberg.org/courseteen/server/internal/llm"
	"codeberg.org/courseteen/server/internal/retriever"
)

type mockAsker struct {
	askFunc func(ctx context.Context, query string) (*agent.AskResponse, error)
}

func (m *mockAsker) Ask(ctx context.Context, query string) (*agent.AskResponse, error) {
	return m.askFunc(ctx, query)
}

func setup(t *testing.T) (*gin.Engine, *retriever.Pipeline) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	embedder, err := llm.NewHashEmbedder(128)
	require.NoError(t, err)

	pipeline, err := retriever.New(embedder, retriever.Config{
		Chunking: chunker.Options{Size: 8, Overlap: 2},
	})
	require.NoError(t, err)

	chat := agent.New(pipeline, emotion.NewLexiconClassifier(), llm.NewLocalGenerator(), agent.Config{})

	router := gin.New()
	RegisterRoutes(router, chat, pipeline, 3)

	return router, pipeline
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	return w
}

func TestAsk_EmptyStore(t *testing.T) {
	router, _ := setup(t)

	w := post(router, "/ask", `{"query":"where do penguins live?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.JSONEq(t, `{"answer":"⚠️ Please ingest some text first.","mood":"neutral"}`, w.Body.String())
}

func TestAsk(t *testing.T) {
	router, pipeline := setup(t)

	_, err := pipeline.Ingest(context.Background(),
		"Penguins live in the southern hemisphere. They cannot fly. Bananas grow in warm climates and are yellow.")
	require.NoError(t, err)

	w := post(router, "/ask", `{"query":"I am so happy! where do penguins live?"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp agent.AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, emotion.LabelJoy, resp.Mood)
	assert.True(t, strings.HasPrefix(resp.Answer, "😄 "))
	assert.Contains(t, resp.Answer, "Penguins live")
	assert.NotEmpty(t, resp.Context)
	assert.Positive(t, resp.Confidence)
}

func TestAsk_EmptyQuery(t *testing.T) {
	router, _ := setup(t)

	for _, body := range []string{`{"query":"  "}`, `{}`, `[`} {
		w := post(router, "/ask", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestAsk_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"embedding failure", fmt.Errorf("%w: provider down", retriever.ErrEmbedding), http.StatusBadGateway},
		{"generation failure", fmt.Errorf("%w: quota", agent.ErrGeneration), http.StatusBadGateway},
		{"timeout", fmt.Errorf("%w: %w", agent.ErrGeneration, context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"consistency", fmt.Errorf("%w: 3 vs 2", retriever.ErrIndexConsistency), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)

			asker := &mockAsker{
				askFunc: func(context.Context, string) (*agent.AskResponse, error) { return nil, tt.err },
			}

			router := gin.New()
			router.POST("/ask", Handler(asker))

			w := post(router, "/ask", `{"query":"hello"}`)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestQuery(t *testing.T) {
	router, pipeline := setup(t)

	w := post(router, "/query", `{"query":"penguins"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"chunks":[],"matches":[],"no_data":true}`, w.Body.String())

	_, err := pipeline.Ingest(context.Background(),
		"penguins live in the south. bananas are yellow fruit. rivers flow to the sea. mountains are tall and cold.")
	require.NoError(t, err)

	w = post(router, "/query", `{"query":"where do penguins live","k":2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp QueryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.False(t, resp.NoData)
	require.Len(t, resp.Matches, 2)
	assert.Len(t, resp.Chunks, 2)
	assert.LessOrEqual(t, resp.Matches[0].Distance, resp.Matches[1].Distance)
	assert.Contains(t, resp.Chunks[0], "penguins")
}

func TestQuery_Validation(t *testing.T) {
	router, _ := setup(t)

	for _, body := range []string{`{"query":""}`, `{"query":"x","k":-1}`, `{"query":"x","k":500}`} {
		w := post(router, "/query", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}
