package styles

import (
	"fmt"
	"time"
)

// AccentBadge renders text as an accent-colored badge.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders text as a low-emphasis badge.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

var relativeUnits = []struct {
	span   time.Duration
	unit   time.Duration
	suffix string
}{
	{time.Hour, time.Minute, "m"},
	{24 * time.Hour, time.Hour, "h"},
	{7 * 24 * time.Hour, 24 * time.Hour, "d"},
	{30 * 24 * time.Hour, 7 * 24 * time.Hour, "w"},
	{365 * 24 * time.Hour, 30 * 24 * time.Hour, "mo"},
}

// RelativeTime renders tm relative to now, e.g. "5m ago" or "3d ago".
func RelativeTime(tm time.Time) string {
	diff := time.Since(tm)
	if diff < time.Minute {
		return "just now"
	}
	for _, ru := range relativeUnits {
		if diff < ru.span {
			return fmt.Sprintf("%d%s ago", int(diff/ru.unit), ru.suffix)
		}
	}
	return fmt.Sprintf("%dy ago", int(diff/(365*24*time.Hour)))
}
