package errors

import (
	"context"
	"errors"
	"os"
	"strings"

	"codeberg.org/courseteen/server/internal/agent"
	"codeberg.org/courseteen/server/internal/retriever"
)

// analyzes an error and returns its category and sanitized message
func classifyError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{CategoryUnknown, ""}
	}

	isProduction := os.Getenv("ENVIRONMENT") == "production"

	// pipeline sentinels first, they carry the most precise meaning
	switch {
	case errors.Is(err, retriever.ErrValidation):
		return ErrorInfo{
			category:  CategoryValidation,
			sanitized: err.Error(),
		}
	case errors.Is(err, retriever.ErrEmbedding):
		return ErrorInfo{
			category:  CategoryUpstream,
			sanitized: ternary(isProduction, "embedding service failed", err.Error()),
		}
	case errors.Is(err, retriever.ErrIndexConsistency):
		return ErrorInfo{
			category:  CategoryConsistency,
			sanitized: ternary(isProduction, "index is inconsistent", err.Error()),
		}
	case errors.Is(err, retriever.ErrEmptyStore):
		return ErrorInfo{
			category:  CategoryNotFound,
			sanitized: err.Error(),
		}
	}

	// context errors
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorInfo{
			category:  CategoryTimeout,
			sanitized: ternary(isProduction, "request timed out", err.Error()),
		}
	}

	if errors.Is(err, context.Canceled) {
		return ErrorInfo{
			category:  CategoryTimeout,
			sanitized: ternary(isProduction, "request canceled", err.Error()),
		}
	}

	if errors.Is(err, agent.ErrGeneration) {
		return ErrorInfo{
			category:  CategoryUpstream,
			sanitized: ternary(isProduction, "answer generation failed", err.Error()),
		}
	}

	// fallback to string matching for unknown error types
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline") {
		return ErrorInfo{
			category:  CategoryTimeout,
			sanitized: ternary(isProduction, "request timed out", err.Error()),
		}
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") ||
		strings.Contains(errMsg, "dial") {
		return ErrorInfo{
			category:  CategoryNetwork,
			sanitized: ternary(isProduction, "connection error occurred", err.Error()),
		}
	}

	if strings.Contains(errMsg, "validation") || strings.Contains(errMsg, "binding") ||
		strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "required") {
		return ErrorInfo{
			category:  CategoryValidation,
			sanitized: ternary(isProduction, "validation failed", err.Error()),
		}
	}

	return ErrorInfo{
		category:  CategoryUnknown,
		sanitized: ternary(isProduction, "an error occurred", err.Error()),
	}
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	return classifyError(err).sanitized
}

// ternary helper for cleaner conditional assignment
func ternary(condition bool, trueVal, falseVal string) string {
	if condition {
		return trueVal
	}

	return falseVal
}
