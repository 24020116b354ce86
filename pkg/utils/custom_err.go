package utils

import "errors"

var (
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAccountNotFound        = errors.New("account not found")
	ErrEmptyProfileUpdate     = errors.New("empty profile update")
	ErrEmptyPreferencesUpdate = errors.New("empty preferences update")
	ErrProfileOwnership       = errors.New("profile ownership mismatch")
	ErrPreferencesOwnership   = errors.New("preferences ownership mismatch")
	ErrDatabaseError          = errors.New("database error")
)
