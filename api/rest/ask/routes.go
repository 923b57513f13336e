package ask

import "github.com/gin-gonic/gin"

// registers question answering and raw retrieval routes
func RegisterRoutes(router gin.IRoutes, asker Asker, querier Querier, defaultK int) {
	router.POST("/ask", Handler(asker))
	router.POST("/query", QueryHandler(querier, defaultK))
}
