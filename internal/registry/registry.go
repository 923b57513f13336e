package registry

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("chunk ordinal out of range")

// Registry maps vector store ordinals back to chunk text. Ordinal i always refers
// to the i-th appended chunk. Like the vector store it does no locking.
type Registry struct {
	chunks []string
}

func New() *Registry {
	return &Registry{}
}

// records text and returns its ordinal
func (r *Registry) Append(text string) int {
	r.chunks = append(r.chunks, text)
	return len(r.chunks) - 1
}

func (r *Registry) Get(ordinal int) (string, error) {
	if ordinal < 0 || ordinal >= len(r.chunks) {
		return "", fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, ordinal, len(r.chunks))
	}

	return r.chunks[ordinal], nil
}

func (r *Registry) Len() int {
	return len(r.chunks)
}

// drops every chunk at or after ordinal n
func (r *Registry) Truncate(n int) {
	if n < 0 {
		n = 0
	}

	if n >= len(r.chunks) {
		return
	}

	clear(r.chunks[n:])
	r.chunks = r.chunks[:n]
}

func (r *Registry) Reset() {
	r.chunks = nil
}
