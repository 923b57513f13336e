package client

import (
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 2 * time.Minute

// talks to the chatbot REST API
type Client struct {
	baseURL    string
	adminKey   string
	httpClient *http.Client
}

type Option func(*Client)

type IngestResponse struct {
	Status       string `json:"status"`
	ChunksAdded  int    `json:"chunks_added"`
	ChunksStored int    `json:"chunks_stored"`
	Source       string `json:"source,omitempty"`
	Filename     string `json:"filename,omitempty"`
}

type Match struct {
	Ordinal  int     `json:"ordinal"`
	Text     string  `json:"text"`
	Distance float64 `json:"distance"`
}

type QueryResponse struct {
	Chunks  []string `json:"chunks"`
	Matches []Match  `json:"matches"`
	NoData  bool     `json:"no_data"`
}

type AskResponse struct {
	Answer     string   `json:"answer"`
	Mood       string   `json:"mood"`
	Confidence float64  `json:"confidence,omitempty"`
	Context    []string `json:"context,omitempty"`
	Model      string   `json:"model,omitempty"`
}

type Stats struct {
	Chunks    int `json:"chunks"`
	Dimension int `json:"dimension"`
}

// APIError is a non-2xx response carrying the server's error body
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"error"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		if e.Message != "" {
			return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
		}

		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type ingestTextRequest struct {
	Text string `json:"text"`
}

type ingestURLRequest struct {
	URL string `json:"url"`
}

type queryRequest struct {
	Query string `json:"query"`
	K     int    `json:"k,omitempty"`
}

type askRequest struct {
	Query string `json:"query"`
}
