package llm

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of error. The set is closed:
// every error this subsystem raises carries one of these kinds.
type ErrorKind string

const (
	// ErrKindValidation covers malformed message lists or shapes.
	ErrKindValidation ErrorKind = "validation"
	// ErrKindConfiguration covers missing credentials, base URLs,
	// missing or invalid default models, and disabled configs.
	ErrKindConfiguration ErrorKind = "configuration"
	// ErrKindVendorAPI covers non-2xx vendor responses, malformed
	// vendor payloads, and network failures.
	ErrKindVendorAPI ErrorKind = "vendor_api"
	// ErrKindDependency covers unavailable collaborators, e.g. the
	// model-configuration store.
	ErrKindDependency ErrorKind = "dependency"
)

// Error represents a provider-neutral error raised by this subsystem.
// Errors are immutable once raised and never mutated while propagating.
type Error struct {
	Kind       ErrorKind
	Message    string
	Context    map[string]any // vendor, model, field, ... optional
	StatusCode int            // HTTP status for vendor_api errors, 0 otherwise
	Err        error          // underlying vendor/transport error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error for the given field.
func NewValidationError(message, field string) *Error {
	e := &Error{Kind: ErrKindValidation, Message: message}
	if field != "" {
		e.Context = map[string]any{"field": field}
	}
	return e
}

// NewConfigurationError creates a configuration error for the given field.
func NewConfigurationError(message, field string) *Error {
	e := &Error{Kind: ErrKindConfiguration, Message: message}
	if field != "" {
		e.Context = map[string]any{"field": field}
	}
	return e
}

// NewVendorAPIError creates a vendor-API error carrying the vendor name,
// model, and HTTP status when known.
func NewVendorAPIError(message, vendor, model string, statusCode int, err error) *Error {
	ctx := map[string]any{}
	if vendor != "" {
		ctx["vendor"] = vendor
	}
	if model != "" {
		ctx["model"] = model
	}
	return &Error{
		Kind:       ErrKindVendorAPI,
		Message:    message,
		Context:    ctx,
		StatusCode: statusCode,
		Err:        err,
	}
}

// NewDependencyError creates a dependency error for an unavailable
// collaborator.
func NewDependencyError(message string, err error) *Error {
	return &Error{Kind: ErrKindDependency, Message: message, Err: err}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return isKind(err, ErrKindValidation)
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	return isKind(err, ErrKindConfiguration)
}

// IsVendorAPIError checks if an error is a vendor-API error.
func IsVendorAPIError(err error) bool {
	return isKind(err, ErrKindVendorAPI)
}

// IsDependencyError checks if an error is a dependency error.
func IsDependencyError(err error) bool {
	return isKind(err, ErrKindDependency)
}

func isKind(err error, kind ErrorKind) bool {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Kind == kind
	}
	return false
}
