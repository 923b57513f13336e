package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/courseteen/server/internal/config"
	"codeberg.org/courseteen/server/internal/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.Default()
	cfg.Retrieval.ChunkSize = 8
	cfg.Retrieval.ChunkOverlap = 2
	cfg.AllowedOrigins = []string{"http://localhost:5173"}

	srv, err := NewServer(cfg)
	require.NoError(t, err)

	return srv
}

func request(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("Origin", "http://localhost:5173")
	srv.router.ServeHTTP(w, req)

	return w
}

func TestServer_EndToEnd(t *testing.T) {
	srv := newTestServer(t)

	w := request(srv, http.MethodPost, "/ask", `{"query":"what do penguins eat?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"answer":"⚠️ Please ingest some text first.","mood":"neutral"}`, w.Body.String())

	w = request(srv, http.MethodPost, "/ingest_text",
		`{"text":"Penguins eat krill and small fish. They live in the southern hemisphere and cannot fly."}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"success"`)

	w = request(srv, http.MethodPost, "/ask", `{"query":"I'm worried, what do penguins eat?"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var answer map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &answer))
	assert.Equal(t, "fear", answer["mood"])
	assert.Contains(t, answer["answer"], "krill")

	w = request(srv, http.MethodGet, "/stats", "")
	assert.Contains(t, w.Body.String(), `"dimension":384`)

	w = request(srv, http.MethodDelete, "/store", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, srv.services.Pipeline.Len())
}

func TestServer_Middleware(t *testing.T) {
	srv := newTestServer(t)

	w := request(srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotEmpty(t, w.Header().Get(logger.RequestIDHeader))
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	w := request(srv, http.MethodGet, "/ingest_everything", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not_found","message":"route not found"}`, w.Body.String())
}

func TestCORSMiddleware_Wildcard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORSMiddleware([]string{"*", "http://localhost:5173"}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}
