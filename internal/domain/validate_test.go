package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	limits := DefaultFieldLimits()

	t.Run("accepts a valid title", func(t *testing.T) {
		assert.NoError(t, ValidateTitle("Ship the release", limits))
	})

	t.Run("rejects empty title", func(t *testing.T) {
		err := ValidateTitle("", limits)
		require.Error(t, err)
		assert.EqualError(t, err, "Title is required")
	})

	t.Run("rejects whitespace-only title", func(t *testing.T) {
		err := ValidateTitle("   \t ", limits)
		require.Error(t, err)
		assert.EqualError(t, err, "Title is required")
	})

	t.Run("accepts a title at the limit", func(t *testing.T) {
		assert.NoError(t, ValidateTitle(strings.Repeat("x", 100), limits))
	})

	t.Run("rejects a title over the limit", func(t *testing.T) {
		err := ValidateTitle(strings.Repeat("x", 101), limits)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
		assert.EqualError(t, err, "Title too long (max 100 characters)")
	})

	t.Run("honors configured limits", func(t *testing.T) {
		err := ValidateTitle("too long for ten", FieldLimits{TitleMax: 10, DescriptionMax: 50})
		require.Error(t, err)
		assert.EqualError(t, err, "Title too long (max 10 characters)")
	})
}

func TestValidateDescription(t *testing.T) {
	limits := DefaultFieldLimits()

	t.Run("allows empty description", func(t *testing.T) {
		assert.NoError(t, ValidateDescription("", limits))
	})

	t.Run("accepts a description at the limit", func(t *testing.T) {
		assert.NoError(t, ValidateDescription(strings.Repeat("d", 500), limits))
	})

	t.Run("rejects a description over the limit", func(t *testing.T) {
		err := ValidateDescription(strings.Repeat("d", 501), limits)
		require.Error(t, err)
		assert.EqualError(t, err, "Description too long (max 500 characters)")
	})
}

func TestValidateDueDate(t *testing.T) {
	t.Run("parses RFC 3339", func(t *testing.T) {
		due, err := ValidateDueDate("2026-12-31T23:59:59Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC), due)
	})

	t.Run("rejects unparseable text", func(t *testing.T) {
		for _, input := range []string{"", "tomorrow", "31/12/2026", "2026-13-01T00:00:00Z"} {
			_, err := ValidateDueDate(input)
			require.Error(t, err, "input %q", input)
			assert.EqualError(t, err, "Invalid due date format")
		}
	})
}

func TestValidateStatus(t *testing.T) {
	t.Run("defaults to open when empty", func(t *testing.T) {
		status, err := ValidateStatus("")
		require.NoError(t, err)
		assert.Equal(t, StatusOpen, status)
	})

	t.Run("accepts every canonical value", func(t *testing.T) {
		for _, want := range Statuses() {
			got, err := ValidateStatus(want.RESTValue())
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := ValidateStatus("INVALID_STATUS")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, CodeInvalidStatus, validationErr.Code)
	})
}
