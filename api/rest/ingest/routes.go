package ingest

import "github.com/gin-gonic/gin"

// registers ingestion routes
func RegisterRoutes(router gin.IRoutes, ingester Ingester, pages Scraper, maxUploadBytes int64) {
	router.POST("/ingest_text", TextHandler(ingester))
	router.POST("/ingest_url", URLHandler(ingester, pages))
	router.POST("/ingest_pdf", PDFHandler(ingester, maxUploadBytes))
}
