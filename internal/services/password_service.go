package services

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// PasswordService checks password strength and hashes secrets with bcrypt
type PasswordService struct {
	cost int
}

// NewPasswordService creates a new PasswordService. Out-of-range costs fall back to bcrypt's default.
func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordService{cost: cost}
}

// IsStrong reports whether password has at least 8 characters including upper case,
// lower case, a digit and a special character
func (s *PasswordService) IsStrong(password string) bool {
	if len([]rune(password)) < minPasswordLength {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}

	return upper && lower && digit && special
}

// Hash returns the bcrypt hash of secret
func (s *PasswordService) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}

// Matches reports whether secret matches hash
func (s *PasswordService) Matches(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
