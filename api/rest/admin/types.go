package admin

import "codeberg.org/courseteen/server/internal/retriever"

// satisfied by *retriever.Pipeline
type Store interface {
	Stats() retriever.Stats
	Reset()
}

type ResetResponse struct {
	Status string `json:"status"`
}
