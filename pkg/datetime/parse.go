// Package datetime provides date and time utility functions.
package datetime

import (
	"strings"
	"time"

	"github.com/iwvelando/finance-report/pkg/constants"
)

const (
	// DateLayout is the format expected for transaction dates and is also the
	// output date format.
	DateLayout = constants.DateLayout
)

// MustParseDate parses a date string using DateLayout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(dateStr string) time.Time {
	t, err := ParseDate(dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD). Surrounding whitespace is
// ignored and the result is midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(dateStr))
}

// FormatDate renders a date in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDisplayDate renders a date the way HTML reports show it, e.g. "Jan 02, 2024".
func FormatDisplayDate(t time.Time) string {
	return t.Format(constants.DisplayDateLayout)
}

// Truncate drops any time-of-day component and normalises to UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
