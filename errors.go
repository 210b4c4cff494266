package recordval

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoValidator is returned when validation is requested without a
	// Validator and the resolved rules are not empty.
	ErrNoValidator = errors.New("no validator provided")

	// ErrNilRecord is returned when a nil record is passed to Validate.
	ErrNilRecord = errors.New("nil record provided")
)

// ValidationError describes a single field-level failure. Rule names the
// failed directive so message catalogs can re-render the error, and Params
// carries the directive parameters used for interpolation.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
	Params  map[string]any
}

// ValidationErrors aggregates field-level failures and satisfies the error
// interface so a Validator can return all failures in a single error value.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns all messages recorded for field, in order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// First returns the first message recorded for field, or an empty string.
func (ve ValidationErrors) First(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

// Fields returns the distinct field names with failures, in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool, len(ve))
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// AsValidationErrors extracts ValidationErrors from err, unwrapping as
// needed. Returns nil when err carries no validation failures.
func AsValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}

	var failed *FailedError
	if errors.As(err, &failed) {
		return failed.Errors()
	}

	return nil
}

// FailedError reports that a record failed validation. It carries the
// offending record so error-rendering layers can inspect it.
type FailedError struct {
	record any
	errors ValidationErrors
}

// NewFailedError builds a FailedError for rec with the given failures.
func NewFailedError(rec any, errs ValidationErrors) *FailedError {
	return &FailedError{record: rec, errors: errs}
}

func (e *FailedError) Error() string {
	return e.errors.Error()
}

// Unwrap exposes the underlying ValidationErrors to errors.As.
func (e *FailedError) Unwrap() error {
	return e.errors
}

// Record returns the record that failed validation.
func (e *FailedError) Record() any {
	return e.record
}

// Errors returns the field-level failures.
func (e *FailedError) Errors() ValidationErrors {
	return e.errors
}
