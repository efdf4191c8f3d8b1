package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_AppendsResource(t *testing.T) {
	err := NewNotFoundError("game")

	assert.Equal(t, "game not found", err.Message)
	assert.Equal(t, 404, err.HTTPStatus)
	assert.True(t, IsNotFound(err))
}

func TestErrorTypePredicates(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("bad input")))
	assert.True(t, IsConflict(NewConflictError("already exists")))
	assert.True(t, IsNotEligible(NewNotEligibleError("not eligible")))
	assert.True(t, IsDatabase(NewDatabaseError("put", errors.New("boom"))))

	assert.False(t, IsNotFound(NewValidationError("bad input")))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestPredicates_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("saving review: %w", NewConflictError("already exists"))

	assert.True(t, IsConflict(wrapped))
	assert.Equal(t, ErrorTypeConflict, GetAppError(wrapped).Type)
}

func TestWithRetryable(t *testing.T) {
	err := NewConflictError("id collision").WithRetryable()

	assert.True(t, err.Retryable)
	assert.True(t, IsConflict(err))
}

func TestWrap_PreservesAppErrorType(t *testing.T) {
	err := Wrap(NewNotFoundError("user"), "loading reviewer")

	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "loading reviewer")
}
