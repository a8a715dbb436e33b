package sdk

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is() to check.
var (
	// ErrUnknownDomain is returned when the requested domain is not
	// configured on the server.
	ErrUnknownDomain = errors.New("unknown domain")
	// ErrUnauthorized is returned when the API key is missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("designdex: %s (%s, http %d)", e.Message, e.Code, e.StatusCode)
}

// Is maps well-known error codes onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnknownDomain:
		return e.Code == "unknown_domain"
	case ErrUnauthorized:
		return e.StatusCode == 401
	}
	return false
}
