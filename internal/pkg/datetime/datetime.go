package datetime

import (
	"time"

	"shareit/internal/pkg/errs"
)

// Layout is the local date-time form exchanged with clients
const Layout = "2006-01-02T15:04:05"

var ErrInvalidFormat = errs.New("invalid date-time format, expected " + Layout)

// Parse accepts Layout in the local zone or RFC 3339
func Parse(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(Layout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidFormat
}

func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(Layout)
}
