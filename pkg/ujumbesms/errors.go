package ujumbesms

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrCodeNetwork       = "NETWORK_ERROR"
	ErrCodeAPI           = "API_ERROR"
	ErrCodeSerialization = "SERIALIZATION_ERROR"
	ErrCodeInvalidConfig = "INVALID_CONFIG"
)

var (
	ErrNetwork       = errors.New(ErrCodeNetwork)
	ErrAPI           = errors.New(ErrCodeAPI)
	ErrSerialization = errors.New(ErrCodeSerialization)
	ErrInvalidConfig = errors.New(ErrCodeInvalidConfig)
)

var sentinels = map[string]error{
	ErrCodeNetwork:       ErrNetwork,
	ErrCodeAPI:           ErrAPI,
	ErrCodeSerialization: ErrSerialization,
	ErrCodeInvalidConfig: ErrInvalidConfig,
}

var prefixes = map[string]string{
	ErrCodeNetwork:       "network error",
	ErrCodeAPI:           "API error",
	ErrCodeSerialization: "serialization error",
	ErrCodeInvalidConfig: "invalid configuration",
}

// Error is returned by every client operation. Match the kind with errors.Is against the Err* sentinels.
type Error struct {
	Code  string
	Cause error
}

func newError(code string, cause error) error {
	return &Error{Code: code, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return prefixes[e.Code]
	}
	return fmt.Sprintf("%s: %v", prefixes[e.Code], e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	return sentinels[e.Code] == target
}

// APIError carries a non-success response verbatim. Body is never parsed.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Body)
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTemporary reports whether retrying the same call may succeed: transport failures, 429 and 5xx responses.
func IsTemporary(err error) bool {
	if errors.Is(err, ErrNetwork) {
		return true
	}
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.StatusCode == http.StatusTooManyRequests ||
			apiErr.StatusCode >= http.StatusInternalServerError
	}
	return false
}
