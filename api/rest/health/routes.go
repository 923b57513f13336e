package health

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRoutes) {
	router.GET("/", RootHandler)
	router.GET("/health", Handler)
	router.GET("/ping", PingHandler)
}
