package errors

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "validation_error", "upstream_error")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

type ErrorInfo struct {
	category  string
	sanitized string
}

// standard error codes
const (
	CodeNotFound        = "not_found"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeBadRequest      = "bad_request"
	CodeTooManyRequests = "too_many_requests"
	CodeUpstreamError   = "upstream_error"
	CodeTimeout         = "timeout"
	CodePayloadTooLarge = "payload_too_large"
	CodeUnauthorized    = "unauthorized"
)

// error categories for classification
const (
	CategoryUpstream    = "upstream"
	CategoryNetwork     = "network"
	CategoryValidation  = "validation"
	CategoryConsistency = "consistency"
	CategoryNotFound    = "not_found"
	CategoryTimeout     = "timeout"
	CategoryUnknown     = "unknown"
)
