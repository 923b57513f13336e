package ingest

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/courseteen/server/internal/errors"
	"codeberg.org/courseteen/server/internal/logger"
	"codeberg.org/courseteen/server/internal/pdftext"
	"codeberg.org/courseteen/server/internal/scraper"
)

// TextHandler godoc
// @Summary Ingest raw text
// @Description Chunks, embeds and stores the given text
// @Tags ingest
// @Accept json
// @Produce json
// @Param request body TextRequest true "Text to ingest"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /ingest_text [post]
func TextHandler(ingester Ingester) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		ingestAndRespond(c, ingester, req.Text, Response{Source: "text"})
	}
}

// URLHandler godoc
// @Summary Ingest a web page
// @Description Scrapes the visible text of a page and ingests it
// @Tags ingest
// @Accept json
// @Produce json
// @Param request body URLRequest true "Page to ingest"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /ingest_url [post]
func URLHandler(ingester Ingester, pages Scraper) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req URLRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		text, err := pages.Scrape(c.Request.Context(), req.URL)
		if err != nil {
			switch {
			case stderrors.Is(err, scraper.ErrInvalidURL):
				errors.BadRequest(c, "invalid url", err)
			case stderrors.Is(err, scraper.ErrFetch), stderrors.Is(err, scraper.ErrPageTooShort):
				errors.UpstreamError(c, "failed to scrape page", err)
			default:
				errors.FromPipeline(c, "failed to scrape page", err)
			}

			return
		}

		ingestAndRespond(c, ingester, text, Response{Source: req.URL})
	}
}

// PDFHandler godoc
// @Summary Ingest a PDF document
// @Description Extracts the text of an uploaded PDF and ingests it
// @Tags ingest
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF document"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Router /ingest_pdf [post]
func PDFHandler(ingester Ingester, maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 {
			if c.Request.ContentLength > maxBytes {
				errors.PayloadTooLarge(c, "pdf exceeds upload limit")
				return
			}

			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		header, err := c.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if stderrors.As(err, &tooLarge) {
				errors.PayloadTooLarge(c, "pdf exceeds upload limit")
				return
			}

			errors.BadRequest(c, "multipart field 'file' required", err)
			return
		}

		file, err := header.Open()
		if err != nil {
			errors.BadRequest(c, "failed to open upload", err)
			return
		}
		defer file.Close() //nolint:errcheck

		data, err := io.ReadAll(file)
		if err != nil {
			errors.BadRequest(c, "failed to read upload", err)
			return
		}

		text, err := pdftext.ExtractBytes(data)
		if err != nil {
			errors.BadRequest(c, "could not extract text from pdf", err)
			return
		}

		ingestAndRespond(c, ingester, text, Response{Source: "pdf", Filename: header.Filename})
	}
}

func ingestAndRespond(c *gin.Context, ingester Ingester, text string, response Response) {
	added, err := ingester.Ingest(c.Request.Context(), text)
	if err != nil {
		errors.FromPipeline(c, "failed to ingest text", err)
		return
	}

	response.Status = "success"
	response.ChunksAdded = added
	response.ChunksStored = ingester.Len()

	logger.FromContext(c.Request.Context()).Info("ingested document",
		"source", response.Source,
		"chunks_added", response.ChunksAdded,
		"chunks_stored", response.ChunksStored,
	)

	c.JSON(http.StatusOK, response)
}
