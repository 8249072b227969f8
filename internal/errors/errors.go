package errors

import "fmt"

// ErrorCode represents a Jot error code.
type ErrorCode string

const (
	ErrConfig         ErrorCode = "CONFIG"          // startup configuration problem, fatal
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrUnauthorized   ErrorCode = "UNAUTHORIZED"    // 401
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrAPI            ErrorCode = "API_ERROR"       // any other non-2xx from Notion
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// JotError represents a structured error with code, status, and details.
type JotError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *JotError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewConfig creates a fatal configuration error.
func NewConfig(msg string) *JotError {
	return &JotError{
		Code:    ErrConfig,
		Message: msg,
	}
}

// NewInvalidRequest creates a 400 error for invalid parameters.
func NewInvalidRequest(msg string) *JotError {
	return &JotError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewUnauthorized creates a 401 error for a rejected API token.
func NewUnauthorized() *JotError {
	return &JotError{
		Code:    ErrUnauthorized,
		Status:  401,
		Message: "unauthorized: invalid or missing API token",
	}
}

// NewNotFound creates a 404 error for a missing page or database.
func NewNotFound(identifier string) *JotError {
	return &JotError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewAPI creates an error carrying a non-2xx Notion response verbatim.
// The raw body is kept because Notion error payloads vary by endpoint.
func NewAPI(status int, body string) *JotError {
	return &JotError{
		Code:    ErrAPI,
		Status:  status,
		Message: fmt.Sprintf("notion API error (HTTP %d): %s", status, body),
		Details: map[string]any{"http_status": status, "body": body},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *JotError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &JotError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a JotError with the given code.
func Is(err error, code ErrorCode) bool {
	if jErr, ok := err.(*JotError); ok {
		return jErr.Code == code
	}
	return false
}
