package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	assert.Equal(t, "activity not found", ErrActivityNotFound.Error())
	assert.Equal(t, "user not found", ErrUserNotFound.Error())
}

func TestNotFoundErrorIs(t *testing.T) {
	assert.True(t, errors.Is(ErrActivityNotFound, &NotFoundError{Entity: "activity"}))
	assert.False(t, errors.Is(ErrActivityNotFound, ErrUserNotFound))
}

func TestNotFoundErrorIsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("fetching: %w", ErrActivityNotFound)
	assert.True(t, errors.Is(wrapped, ErrActivityNotFound))
	assert.True(t, IsNotFound(wrapped))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "team member already exists on this activity", ErrMemberExists.Error())
	assert.Equal(t, "saved activity already exists for this user", ErrActivitySaved.Error())

	plain := &AlreadyExistsError{Entity: "thing"}
	assert.Equal(t, "thing already exists", plain.Error())
}

func TestAlreadyExistsErrorIs(t *testing.T) {
	assert.True(t, errors.Is(ErrMemberExists, &AlreadyExistsError{Entity: "team member"}))
	assert.False(t, errors.Is(ErrMemberExists, ErrUserExists))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("title", "title is required")
	assert.Equal(t, "validation error: title - title is required", err.Error())

	noField := &ValidationError{Message: "bad input"}
	assert.Equal(t, "validation error: bad input", noField.Error())
}

func TestIsValidation(t *testing.T) {
	err := NewValidationError("links", "not a valid URL")
	assert.True(t, IsValidation(err))
	assert.True(t, IsValidation(fmt.Errorf("create: %w", err)))
	assert.False(t, IsValidation(errors.New("something else")))
}

func TestIsAuthorization(t *testing.T) {
	assert.True(t, IsAuthorization(ErrNotActivityOwner))
	assert.False(t, IsAuthorization(ErrActivityNotFound))
}

func TestIsAuthentication(t *testing.T) {
	err := &AuthenticationError{Message: "invalid token"}
	assert.True(t, IsAuthentication(err))
	assert.Equal(t, "invalid token", err.Error())
	assert.False(t, IsAuthentication(ErrNotActivityOwner))
}

func TestMembershipSentinels(t *testing.T) {
	assert.EqualError(t, ErrNotTeamMember, "user is not a member of this activity")
	assert.EqualError(t, ErrOwnerCannotLeave, "the owner cannot leave their own activity")
	assert.True(t, errors.Is(fmt.Errorf("leave: %w", ErrOwnerCannotLeave), ErrOwnerCannotLeave))
}

func TestHelpersRejectNil(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsAlreadyExists(nil))
	assert.False(t, IsValidation(nil))
}
