package history

import (
	"fmt"
	"time"
)

// FormatRelative renders a change timestamp the way the history panel shows
// it: recent changes get a coarse relative label, anything older than a week
// falls back to an absolute date. Buckets roll at exactly one minute, one
// hour, and one day.
func FormatRelative(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
