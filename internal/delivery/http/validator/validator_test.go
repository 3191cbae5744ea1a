package validator

import (
	"testing"

	domainerrors "carhub/internal/domain/errors"
	"carhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signup{Email: "a@example.com", Password: "long-enough"}))

	err := v.Validate(&signup{Email: "nope", Password: "short"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	appErr, ok := errors.AsType[*domainerrors.BaseError](err)
	require.True(t, ok)
	assert.Equal(t, "email must be a valid email; password must be at least 8 characters", appErr.Details())
}

func TestRequestValidator_NonStruct(t *testing.T) {
	err := New().Validate("not a struct")

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
