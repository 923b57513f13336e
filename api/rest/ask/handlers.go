package ask

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/courseteen/server/internal/errors"
	"codeberg.org/courseteen/server/internal/logger"
)

// Handler godoc
// @Summary Ask a question
// @Description Answers from the ingested context in a tone matched to the detected emotion
// @Tags chat
// @Accept json
// @Produce json
// @Param request body AskRequest true "Question"
// @Success 200 {object} agent.AskResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 504 {object} errors.ErrorResponse
// @Router /ask [post]
func Handler(asker Asker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		response, err := asker.Ask(c.Request.Context(), req.Query)
		if err != nil {
			errors.FromPipeline(c, "failed to answer question", err)
			return
		}

		logger.FromContext(c.Request.Context()).Info("answered question",
			"mood", response.Mood,
			"context_chunks", len(response.Context),
			"no_data", response.NoData,
		)

		c.JSON(http.StatusOK, response)
	}
}

// QueryHandler godoc
// @Summary Retrieve context chunks
// @Description Returns the k stored chunks nearest to the query, without generating an answer
// @Tags chat
// @Accept json
// @Produce json
// @Param request body QueryRequest true "Query"
// @Success 200 {object} QueryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /query [post]
func QueryHandler(querier Querier, defaultK int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QueryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		k := req.K
		if k == 0 {
			k = defaultK
		}

		result, err := querier.Query(c.Request.Context(), req.Query, k)
		if err != nil {
			errors.FromPipeline(c, "failed to query store", err)
			return
		}

		c.JSON(http.StatusOK, QueryResponse{
			Chunks:  result.Texts(),
			Matches: nonNil(result.Matches),
			NoData:  result.NoData,
		})
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
