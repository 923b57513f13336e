package admin

import (
	"codeberg.org/courseteen/server/internal/auth"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router gin.IRoutes, store Store, adminKey string) {
	router.GET("/stats", StatsHandler(store))
	router.DELETE("/store", auth.AdminKeyMiddleware(adminKey), ResetHandler(store))
}
