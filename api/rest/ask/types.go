package ask

import (
	"context"

	"codeberg.org/courseteen/server/internal/agent"
	"codeberg.org/courseteen/server/internal/retriever"
)

// satisfied by *agent.Agent
type Asker interface {
	Ask(ctx context.Context, query string) (*agent.AskResponse, error)
}

// satisfied by *retriever.Pipeline
type Querier interface {
	Query(ctx context.Context, text string, k int) (*retriever.QueryResult, error)
}

type AskRequest struct {
	Query string `json:"query"`
}

type QueryRequest struct {
	Query string `json:"query"`
	K     int    `json:"k" binding:"omitempty,min=1,max=50"`
}

// QueryResponse lists the nearest chunks, closest first
type QueryResponse struct {
	Chunks  []string          `json:"chunks"`
	Matches []retriever.Match `json:"matches"`
	NoData  bool              `json:"no_data"`
}
