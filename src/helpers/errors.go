package helpers

import "fmt"

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type LoaderError struct {
	Message string
	Cause   error
}

func (e *LoaderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *LoaderError) Unwrap() error {
	return e.Cause
}

// -----------------------------------------------------------------------------

// TransportError covers network failures and non-2xx responses while fetching
// the manifest text or resource bytes. No recovery is attempted here; retry
// policy belongs to the caller.
type TransportError struct{ LoaderError }

// ParseError means the fetched manifest text does not conform to the expected
// schema (malformed TOML, wrong value type, missing required 'path'). The
// whole document is rejected; there is no partial map.
type ParseError struct{ LoaderError }

// -----------------------------------------------------------------------------

// NotFoundError reports a configuration key absent from a successfully
// fetched and parsed manifest.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config for key '%s' not found", e.Key)
}

// -----------------------------------------------------------------------------
// Constructors
// -----------------------------------------------------------------------------

func NewTransportError(message string, cause error) *TransportError {
	return &TransportError{LoaderError{Message: message, Cause: cause}}
}

// -----------------------------------------------------------------------------

func NewParseError(message string, cause error) *ParseError {
	return &ParseError{LoaderError{Message: message, Cause: cause}}
}
