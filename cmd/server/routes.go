package main

import (
	"codeberg.org/courseteen/server/api/rest/admin"
	"codeberg.org/courseteen/server/api/rest/ask"
	"codeberg.org/courseteen/server/api/rest/health"
	"codeberg.org/courseteen/server/api/rest/ingest"
	"codeberg.org/courseteen/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes; limiter guards the embedding and LLM backed routes
func RegisterRoutes(router *gin.Engine, server *Server, limiter gin.HandlerFunc) {
	services := server.services

	health.RegisterRoutes(router)
	admin.RegisterRoutes(router, services.Pipeline, server.config.AdminKey)

	limited := router.Group("/", limiter)

	{
		ingest.RegisterRoutes(limited, services.Pipeline, services.Scraper, server.config.MaxUploadBytes)
		ask.RegisterRoutes(limited, services.Agent, services.Pipeline, server.config.Retrieval.TopK)
	}

	router.NoRoute(func(c *gin.Context) {
		errors.NotFound(c, "route")
	})
}
