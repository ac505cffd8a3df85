package view

import (
	"fmt"
	"time"
)

// RelativeTime renders a coarse age label for a warehouse timestamp against
// the supplied wall clock (always UTC in practice). Bands are checked most
// specific first and never overlap. A missing timestamp renders as "" so list
// rows simply omit the time, it is not an error.
func RelativeTime(t *time.Time, now time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	delta := now.Sub(*t)
	if delta < 0 {
		return "Just now"
	}

	days := int(delta.Hours()) / 24
	if days > 365 {
		return plural(days/365, "yr")
	}
	if days > 30 {
		return plural(days/30, "mo")
	}
	if days > 0 {
		return plural(days, "day")
	}

	leftover := int(delta.Seconds()) - days*86400
	if hours := leftover / 3600; hours > 0 {
		return plural(hours, "hr")
	}
	if minutes := (leftover % 3600) / 60; minutes > 0 {
		return plural(minutes, "min")
	}
	return "Just now"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
