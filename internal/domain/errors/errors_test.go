package errors

import (
	"net/http"
	"testing"

	"carhub/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("title: too long")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.True(t, errors.Is(detailed.WithDetails("again"), ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrCarNotFound))
	assert.Equal(t, "title: too long", detailed.Details())
	assert.Equal(t, "input validation failed: title: too long", detailed.Error())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrCarNotFound.WrapMessage("find car")

	assert.True(t, errors.Is(err, ErrCarNotFound))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestAccessDeniedLooksLikeNotFound(t *testing.T) {
	assert.Equal(t, ErrCarNotFound.HTTPCode(), ErrCarAccessDenied.HTTPCode())
	assert.Equal(t, ErrCarNotFound.ErrorCode(), ErrCarAccessDenied.ErrorCode())
	assert.Equal(t, ErrCarNotFound.Message(), ErrCarAccessDenied.Message())
	assert.False(t, errors.Is(ErrCarAccessDenied, ErrCarNotFound))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert car")

	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
