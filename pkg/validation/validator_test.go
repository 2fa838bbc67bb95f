package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "user-post-service/pkg/errors"
)

type testRecord struct {
	Name    string `json:"name" validate:"required,min=4,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

func violationMessages(t *testing.T, err error) []string {
	t.Helper()

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)

	messages := make([]string, len(verr.Violations))
	for i, v := range verr.Violations {
		messages[i] = v.Message
	}
	return messages
}

func TestValidate_Success(t *testing.T) {
	v := New()

	err := v.Validate(testRecord{
		Name:  "John Doe",
		Email: "john@example.com",
	})

	assert.NoError(t, err)
}

func TestValidate_OptionalFieldMayBeEmpty(t *testing.T) {
	v := New()

	err := v.Validate(testRecord{
		Name:    "John Doe",
		Email:   "john@example.com",
		Address: "",
	})

	assert.NoError(t, err)
}

func TestValidate_AccumulatesViolationsAcrossFields(t *testing.T) {
	v := New()

	err := v.Validate(testRecord{Name: "Jo"})
	require.Error(t, err)

	messages := violationMessages(t, err)
	assert.Equal(t, []string{
		"name must be at least 4 characters",
		"email is required",
	}, messages)
}

func TestValidate_ShortCircuitsPerField(t *testing.T) {
	v := New()

	// An empty name fails both required and min; only the first
	// violated constraint on the field is reported.
	err := v.Validate(testRecord{Email: "john@example.com"})
	require.Error(t, err)

	messages := violationMessages(t, err)
	assert.Equal(t, []string{"name is required"}, messages)
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(testRecord{Name: "John Doe", Email: "not-an-email"})
	require.Error(t, err)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "email", verr.Violations[0].Field)
	assert.Equal(t, "email must be a valid email", verr.Violations[0].Message)
}

func TestValidate_TableDriven(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		input    testRecord
		expected []string
	}{
		{
			name:     "missing everything",
			input:    testRecord{},
			expected: []string{"name is required", "email is required"},
		},
		{
			name:     "name too short",
			input:    testRecord{Name: "Jo", Email: "jo@example.com"},
			expected: []string{"name must be at least 4 characters"},
		},
		{
			name:     "invalid email",
			input:    testRecord{Name: "John Doe", Email: "john"},
			expected: []string{"email must be a valid email"},
		},
		{
			name:  "address too long",
			input: testRecord{Name: "John Doe", Email: "john@example.com", Address: string(make([]byte, 256))},
			expected: []string{
				"address must be at most 255 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.expected, violationMessages(t, err))
		})
	}
}
