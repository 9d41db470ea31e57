// Package timeutil formats the calendar dates used to key rankings snapshots.
package timeutil

import (
	"strings"
	"time"
)

// DateLayout is the snapshot date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date as midnight UTC. Surrounding space is ignored.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

// ValidDate reports whether value parses as a snapshot date.
func ValidDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

// FormatDate formats t as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// RetentionCutoff is midnight UTC of the day `days` before now. Snapshot
// dates strictly before it fall outside the retention window.
func RetentionCutoff(now time.Time, days int) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days)
}
