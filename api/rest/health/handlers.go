package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName = "courseteen"
	Version     = "1.0.0"
)

// Handler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Service: ServiceName,
		Version: Version,
	})
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Message: "Emotion-aware chatbot backend is running.",
	})
}
