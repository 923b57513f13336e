package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/courseteen/server/internal/agent"
	"codeberg.org/courseteen/server/internal/retriever"
)

func TestFromPipeline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", fmt.Errorf("%w: k must be positive", retriever.ErrValidation), http.StatusBadRequest, CodeValidationError},
		{"empty store", retriever.ErrEmptyStore, http.StatusNotFound, CodeNotFound},
		{"embedding", fmt.Errorf("%w: dial tcp", retriever.ErrEmbedding), http.StatusBadGateway, CodeUpstreamError},
		{"generation", fmt.Errorf("%w: status 529", agent.ErrGeneration), http.StatusBadGateway, CodeUpstreamError},
		{"deadline", fmt.Errorf("failed to embed query: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, CodeTimeout},
		{"consistency", retriever.ErrIndexConsistency, http.StatusInternalServerError, CodeServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/query", nil)

			FromPipeline(c, "query failed", tt.err)

			require.Equal(t, tt.status, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error)
		})
	}
}

func TestNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NotFound(c, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not_found","message":"resource not found"}`, w.Body.String())
}
