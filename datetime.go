package plotkit

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateTimeLayout is the civil date/time format accepted by ParseDateTime.
const DateTimeLayout = "2006-01-02T15:04:05"

// ParseDateTime parses a civil timestamp of the form YYYY-MM-DDTHH:MM:SS.
// The result carries no time zone information and is returned in UTC.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, &DateParseError{Input: s, Err: errors.WithStack(err)}
	}
	return t, nil
}

// MustParseDateTime is like ParseDateTime but panics on malformed input.
// It simplifies fixed timestamps in tests and examples.
func MustParseDateTime(s string) time.Time {
	t, err := ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return t
}
