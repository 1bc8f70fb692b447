package account

import "errors"

var (
	// Conflict
	ErrAccountExists = errors.New("account already exists")

	// Not Found
	ErrAccountNotFound = errors.New("account not found")

	// Authentication
	ErrInvalidCredentials = errors.New("invalid account or password")
)
