package chunker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOptions is returned when the window would not advance through the text.
var ErrInvalidOptions = errors.New("invalid chunk options")

func DefaultOptions() Options {
	return Options{
		Size:    200,
		Overlap: 50,
	}
}

// reports whether the window can make progress: size > 0 and 0 <= overlap < size
func (o Options) Validate() error {
	if o.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidOptions, o.Size)
	}

	if o.Overlap < 0 {
		return fmt.Errorf("%w: overlap must not be negative, got %d", ErrInvalidOptions, o.Overlap)
	}

	if o.Overlap >= o.Size {
		return fmt.Errorf("%w: overlap %d must be smaller than size %d", ErrInvalidOptions, o.Overlap, o.Size)
	}

	return nil
}

// splits text into windows of opts.Size whitespace-separated words, each window
// starting opts.Size-opts.Overlap words after the previous one
func Chunk(text string, opts Options) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	step := opts.Size - opts.Overlap
	chunks := make([]string, 0, len(words)/step+1)

	for start := 0; start < len(words); start += step {
		end := min(start+opts.Size, len(words))
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}

	return chunks, nil
}
