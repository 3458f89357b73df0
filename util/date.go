package util

import "time"

// Publication dates come back from the catalog in three granularities.
// Tried in order, coarser granularities pad to the start of the period.
var dateFormats = []string{"2006-01-02", "2006-01", "2006"}

// NormalizeDate parses a publication date string into canonical YYYY-MM-DD
// form. ok is false when no granularity matches; callers store the raw
// string as plain text in that case.
func NormalizeDate(s string) (string, bool) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
