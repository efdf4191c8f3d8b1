package utils

import "time"

// FormatRFC3339 renders a time as an RFC3339 UTC string. Zero times
// render as the empty string so optional timestamps stay absent in
// stored items.
func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ParseRFC3339 parses an RFC3339 string. Empty or malformed input
// yields the zero time; records written before timestamps existed
// stay readable.
func ParseRFC3339(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
