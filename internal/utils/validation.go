package utils

import (
	"errors"
	"regexp"
)

// Station short names are alphanumeric with underscore, hyphen, dot.
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID validates that a station identifier is safe and within
// reasonable limits.
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}
