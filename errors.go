package plotkit

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDegenerateDomain is returned if a log domain includes or
	// straddles zero.
	ErrDegenerateDomain = errors.New("domain must not include 0")

	// ErrDescendingScale is returned if a scale requires an ascending
	// domain but got start > end.
	ErrDescendingScale = errors.New("descending scale not allowed")

	// ErrUnimplemented marks deliberate gaps like weekly calendar
	// alignment or niceing a log scale.
	ErrUnimplemented = errors.New("not implemented")
)

// DateParseError reports a malformed date/time string.
type DateParseError struct {
	Input string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("date/time parsing error: %q: %v", e.Input, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }
