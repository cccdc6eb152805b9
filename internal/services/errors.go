package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports malformed caller input: empty strings, negative
// numbers, or a bad date format. It maps to a 400 response.
type ValidationError struct {
	Message string
	// Fields holds per-field messages when the error came from struct
	// validation; nil for single-value checks like a blank username.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// newValidationError converts validator.ValidationErrors into a
// ValidationError carrying one message per failed field.
func newValidationError(err error) *ValidationError {
	ve := &ValidationError{Message: "Validation failed"}
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		ve.Fields = make(map[string]string)
		for _, e := range validationErrors {
			ve.Fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return ve
}

// NotFoundError reports a reference to a meal that does not exist or has
// already been soft-deleted. It maps to a 404 response.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// ConfigurationError reports service misconfiguration, such as a missing AI
// credential. It maps to a 500 response and is not caller-actionable.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamError wraps a failure of the external AI call: network error,
// provider error, or an unparseable response. It maps to a 500 response;
// the caller may retry the whole request, the service never retries itself.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
