package utils

import (
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password string, digest string) bool
}

type BcryptHasher struct{}

func NewBcryptHasher() PasswordHasher {
	return &BcryptHasher{}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// Verify reports whether password matches digest. A malformed digest
// reports false, it never panics or errors.
func (h *BcryptHasher) Verify(password string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
