package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	ErrInvalidPDF = errors.New("invalid pdf")
	ErrNoText     = errors.New("no text extracted from pdf")
)

// returns the plain text of every page with whitespace collapsed
func Extract(r io.ReaderAt, size int64) (text string, err error) {
	// the pdf parser panics on some malformed cross-reference tables
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrInvalidPDF, rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPDF, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: failed to read text: %w", ErrInvalidPDF, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("%w: failed to read text: %w", ErrInvalidPDF, err)
	}

	text = strings.Join(strings.Fields(buf.String()), " ")
	if text == "" {
		return "", ErrNoText
	}

	return text, nil
}

// convenience wrapper for in-memory uploads
func ExtractBytes(data []byte) (string, error) {
	return Extract(bytes.NewReader(data), int64(len(data)))
}
