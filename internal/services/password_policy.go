package services

import (
	"errors"
	"unicode/utf8"
)

var ErrWeakPassword = errors.New("weak password")

const (
	MinPasswordLength   = 6
	msgPasswordTooShort = "Password must be at least 6 characters long."
)

func ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// passwordProblem mirrors ValidatePasswordStrength with the message shown to
// clients.
func passwordProblem(password string) string {
	if password == "" {
		return msgRequired
	}
	if ValidatePasswordStrength(password) != nil {
		return msgPasswordTooShort
	}
	return ""
}
