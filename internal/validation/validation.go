// Package validation contains input format checks shared by the API handlers.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minPasswordLen = 6
	maxPasswordLen = 128
	maxNameLen     = 100
)

// ValidateEmail checks that the address has a plausible mailbox@domain shape.
func ValidateEmail(email string) error {
	if email == "" || len(email) > 254 || !emailRegex.MatchString(email) {
		return fmt.Errorf("Please include a valid email")
	}
	return nil
}

// ValidatePassword enforces the minimum password length for new accounts.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("Please enter a password with %d or more characters", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("Password too long (max %d characters)", maxPasswordLen)
	}
	return nil
}

// ValidateName checks the display name supplied at registration.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("Name is required")
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("Name too long (max %d characters)", maxNameLen)
	}
	return nil
}

// ValidateRequired reports an error naming the field when value is blank.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}
