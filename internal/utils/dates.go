package utils

import "time"

// FormatAppliedDate renders a calendar date the way the dashboards display it,
// e.g. "Oct 12". Stored as a plain string on the application record.
func FormatAppliedDate(t time.Time) string {
	return t.Format("Jan 2")
}
