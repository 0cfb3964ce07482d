package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedType is returned when a Validator receives a value
	// it was not built to validate.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// FieldViolation names a single rejected field together with the reason.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in a single input so
// callers can report all problems at once instead of the first one only.
type ValidationError struct {
	Violations []FieldViolation `json:"violations"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a violation for the named field.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// ErrOrNil returns the error when at least one violation was recorded,
// and nil otherwise. Returning a typed nil pointer as error would be
// non-nil, hence the explicit check.
func (e *ValidationError) ErrOrNil() error {
	if len(e.Violations) == 0 {
		return nil
	}

	return e
}
