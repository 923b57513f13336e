package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/courseteen/server/internal/logger"
)

// StatsHandler godoc
// @Summary Store statistics
// @Tags admin
// @Produce json
// @Success 200 {object} retriever.Stats
// @Router /stats [get]
func StatsHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Stats())
	}
}

// ResetHandler godoc
// @Summary Drop every ingested chunk
// @Description Empties the vector store and chunk registry together
// @Tags admin
// @Produce json
// @Success 200 {object} ResetResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /store [delete]
// @Security AdminKeyAuth
func ResetHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		before := store.Stats().Chunks
		store.Reset()

		logger.FromContext(c.Request.Context()).Info("store reset",
			"chunks_dropped", before,
		)

		c.JSON(http.StatusOK, ResetResponse{Status: "reset"})
	}
}
