// Package dateparse normalizes the date strings accepted by the API into
// absolute instants.
package dateparse

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned for strings that match none of the accepted layouts.
var ErrInvalidDate = errors.New("invalid date")

// layouts are tried in order. Layouts without a zone are read as UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse converts an ISO-like date string to a UTC time.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// ParsePtr parses *s. A nil or blank string means "not provided" and yields nil.
func ParsePtr(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
