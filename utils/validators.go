package utils

import (
	"regexp"
	"time"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidYear accepts model years from 1900 up to next calendar year.
func IsValidYear(year int) bool {
	return year >= 1900 && year <= time.Now().Year()+1
}

// ParseDate parses a calendar date in the form layout used by all form
// date fields (YYYY-MM-DD).
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
