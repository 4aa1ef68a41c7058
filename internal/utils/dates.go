package utils

import "time"

// Layouts the backend has been seen emitting for date fields.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders a backend date string as DD/MM/YYYY for display.
// Unparseable input is returned unchanged; this is a display-only transform
// and must never turn a value into an error.
func FormatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return s
}
