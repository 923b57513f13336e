package retriever

import "errors"

var (
	// malformed input: empty text, k <= 0, bad chunk window
	ErrValidation = errors.New("validation error")

	// a store read that needs at least one chunk found none
	ErrEmptyStore = errors.New("store is empty")

	// the embedder failed or returned a vector of the wrong dimension
	ErrEmbedding = errors.New("embedding failure")

	// the vector store and chunk registry disagree; never expected in practice
	ErrIndexConsistency = errors.New("index consistency violation")
)
