package ingest

import "context"

// chunk ingestion target, satisfied by *retriever.Pipeline
type Ingester interface {
	Ingest(ctx context.Context, text string) (int, error)
	Len() int
}

// page fetcher, satisfied by *scraper.Scraper
type Scraper interface {
	Scrape(ctx context.Context, rawURL string) (string, error)
}

type TextRequest struct {
	Text string `json:"text"`
}

type URLRequest struct {
	URL string `json:"url"`
}

// Response is returned by every ingest endpoint
type Response struct {
	Status       string `json:"status"`
	ChunksAdded  int    `json:"chunks_added"`
	ChunksStored int    `json:"chunks_stored"`
	Source       string `json:"source,omitempty"`
	Filename     string `json:"filename,omitempty"`
}
