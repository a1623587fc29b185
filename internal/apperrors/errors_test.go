package apperrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paydesk/compchange/internal/apperrors"
)

func TestAppError_ErrorIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewAppError(500, "failed to query employees page", cause)

	assert.Equal(t, "failed to query employees page: connection refused", err.Error())
	assert.Equal(t, 500, err.Code)
}

func TestAppError_ErrorWithoutCause(t *testing.T) {
	err := &apperrors.AppError{Code: 500, Message: "failed to begin transaction"}
	assert.Equal(t, "failed to begin transaction", err.Error())
}

func TestAppError_UnwrapPreservesCause(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	err := apperrors.NewAppError(500, "failed to commit transaction", cause)

	assert.True(t, errors.Is(err, cause))

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, cause, appErr.Err)
}

func TestNewNotFoundError_MatchesSentinel(t *testing.T) {
	err := apperrors.NewNotFoundError("employee emp-1 not found")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, 404, err.Code)
}

func TestAppError_SentinelCausePassesThrough(t *testing.T) {
	err := apperrors.NewAppError(400, "invalid nextToken", apperrors.ErrValidation)

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
}
