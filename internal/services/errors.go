package services

import "errors"

// Service-level error taxonomy. Handlers map these onto HTTP statuses;
// anything else surfaces as an internal error.
var (
	// ErrMissingCredentials — signup/signin called without email or password.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrPasswordTooShort — signup password below the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrEmailTaken — an account already exists for the email, whether caught
	// by the pre-insert check or by the unique index under a race.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials covers unknown email, password-less account and
	// wrong password alike, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrMissingFields — a resource mutation without its required fields.
	ErrMissingFields = errors.New("required fields are missing")
)

// MinPasswordLength is the minimum accepted signup password length.
const MinPasswordLength = 6
