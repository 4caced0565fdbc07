// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when registering an email that is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when the email is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrMissingCredentials is returned when email or password is empty.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrWeakPassword is returned when the password is shorter than the minimum length.
	ErrWeakPassword = errors.New("password too short")
)
