package services

import "errors"

var (
	// ErrEmailTaken indicates a registration attempt with an email that
	// already belongs to another account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so login failures don't reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
