package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-user-directory/models"
)

var (
	// ErrUnsupportedType is returned when a validator receives a value of a
	// type it does not know how to validate.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError carries the full ordered list of field violations found in
// a single Validate call. It implements the error interface so services can
// propagate it through their usual error returns.
type ValidationError struct {
	Violations []models.Violation
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}

	return strings.Join(messages, "; ")
}

// Messages returns only the violation messages, in evaluation order.
// Used by the create path, which reports messages without field names.
func (e *ValidationError) Messages() []string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}

	return messages
}
