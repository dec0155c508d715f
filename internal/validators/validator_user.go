package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-directory/models"
	"github.com/go-playground/validator/v10"
)

// userValidator validates [models.User] values against the declarative
// `validate` tags on the struct. The go-playground validator evaluates every
// field and reports all failing rules, which is exactly the collect-all
// contract this service needs.
type userValidator struct {
	validate *validator.Validate
}

// NewUserValidator returns a Validator for [models.User] values.
func NewUserValidator() Validator {
	return &userValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *userValidator) Validate(ctx context.Context, value any) error {
	user, ok := value.(models.User)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	err := v.validate.StructCtx(ctx, user)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		// InvalidValidationError and friends: not a rule failure
		return fmt.Errorf("error validating user: %w", err)
	}

	violations := make([]models.Violation, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, models.Violation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}

	return &ValidationError{Violations: violations}
}

// violationMessage renders a stable human-readable message for a single
// failed rule. Messages are part of the API contract (they appear verbatim
// in 400 response bodies), so keep them in sync with the documented surface.
func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "max":
		return fmt.Sprintf("The %s field must be a string with a maximum length of %s.", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("The %s field is not a valid e-mail address.", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}
