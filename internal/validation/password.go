// Package validation contains input validation helpers for account fields.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

const (
	minPasswordLength = 12
	maxPasswordLength = 128
	minUsernameLength = 3
	maxUsernameLength = 30
	maxEmailLength    = 254
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*[a-zA-Z0-9]$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[a-zA-Z]{2,}$`)
)

// ValidatePassword enforces the password policy: length bounds plus at
// least one upper-case letter, one lower-case letter, one digit and one
// special character.
func ValidatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	if length > maxPasswordLength {
		return fmt.Errorf("password must be at most %d characters long", maxPasswordLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("password must contain at least one upper-case letter")
	}
	if !hasLower {
		return errors.New("password must contain at least one lower-case letter")
	}
	if !hasDigit {
		return errors.New("password must contain at least one digit")
	}
	if !hasSpecial {
		return errors.New("password must contain at least one special character")
	}

	return nil
}

// ValidateUsername allows letters, digits, underscores and dashes, with
// alphanumeric first and last characters.
func ValidateUsername(username string) error {
	length := utf8.RuneCountInString(username)
	if length < minUsernameLength {
		return fmt.Errorf("username must be at least %d characters long", minUsernameLength)
	}
	if length > maxUsernameLength {
		return fmt.Errorf("username must be at most %d characters long", maxUsernameLength)
	}
	if !usernameRegex.MatchString(username) {
		return errors.New("username may only contain letters, digits, underscores and dashes, and must start and end with a letter or digit")
	}
	return nil
}

// ValidateEmail checks basic email shape and RFC length limit.
func ValidateEmail(email string) error {
	if len(email) > maxEmailLength {
		return fmt.Errorf("email must be at most %d characters long", maxEmailLength)
	}
	if !emailRegex.MatchString(email) {
		return errors.New("email address is not valid")
	}
	return nil
}
