package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, config Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	middleware, err := Middleware(config)
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware)
	router.GET("/ask", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	return router
}

func do(router *gin.Engine, path string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "203.0.113.7:4567"
	router.ServeHTTP(w, req)

	return w.Code
}

func TestMiddleware_LimitsPerIP(t *testing.T) {
	router := newRouter(t, Config{Rate: "2-M", ExemptPaths: []string{"/health"}})

	assert.Equal(t, http.StatusOK, do(router, "/ask"))
	assert.Equal(t, http.StatusOK, do(router, "/ask"))
	assert.Equal(t, http.StatusTooManyRequests, do(router, "/ask"))

	for range 5 {
		assert.Equal(t, http.StatusOK, do(router, "/health"), "exempt paths are never limited")
	}
}

func TestMiddleware_Disabled(t *testing.T) {
	router := newRouter(t, Config{})

	for range 10 {
		assert.Equal(t, http.StatusOK, do(router, "/ask"))
	}
}

func TestMiddleware_InvalidRate(t *testing.T) {
	_, err := Middleware(Config{Rate: "lots"})
	assert.Error(t, err)
}
