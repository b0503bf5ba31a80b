package engine

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated   = errors.New("not signed in")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyJoined      = errors.New("already joined")
	ErrNotJoined          = errors.New("not joined")
	ErrOnboardingComplete = errors.New("onboarding is already complete")
)

// RoleError indicates an operation belongs to the other role's view.
type RoleError struct {
	Required Role
	Actual   Role
}

func (e RoleError) Error() string {
	return fmt.Sprintf("this action is only available in the %s view (current view: %s)", e.Required, e.Actual)
}

// ValidationError is a required or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func required(field string) error {
	return ValidationError{Field: field}
}
