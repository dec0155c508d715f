package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violationFields(err error) []string {
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		return nil
	}

	fields := make([]string, 0, len(validationErr.Violations))
	for _, v := range validationErr.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestUserValidator_TableTest(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name       string
		user       models.User
		wantFields []string
	}{
		{
			name: "valid user",
			user: models.User{Name: "Carl", Email: "carl@x.com"},
		},
		{
			name:       "empty name",
			user:       models.User{Name: "", Email: "carl@x.com"},
			wantFields: []string{"Name"},
		},
		{
			name:       "name longer than 50 characters",
			user:       models.User{Name: strings.Repeat("a", 51), Email: "carl@x.com"},
			wantFields: []string{"Name"},
		},
		{
			name: "name of exactly 50 characters is accepted",
			user: models.User{Name: strings.Repeat("a", 50), Email: "carl@x.com"},
		},
		{
			name:       "malformed email",
			user:       models.User{Name: "Carl", Email: "not-an-email"},
			wantFields: []string{"Email"},
		},
		{
			name:       "empty email",
			user:       models.User{Name: "Carl", Email: ""},
			wantFields: []string{"Email"},
		},
		{
			name:       "all violations are collected, not just the first",
			user:       models.User{Name: "", Email: "not-an-email"},
			wantFields: []string{"Name", "Email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.user)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantFields, violationFields(err))
		})
	}
}

func TestUserValidator_MessagesAreStable(t *testing.T) {
	v := NewUserValidator()

	err := v.Validate(context.Background(), models.User{Name: "", Email: "not-an-email"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"The Name field is required.",
		"The Email field is not a valid e-mail address.",
	}, validationErr.Messages())
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	v := NewUserValidator()

	err := v.Validate(context.Background(), "not a user")

	assert.ErrorIs(t, err, ErrUnsupportedType)
}
