package cli

import (
	"fmt"
	"strings"

	"github.com/inovacc/studyplan/internal/timeutil"
)

// HumanDuration renders minutes as "45m", "2h" or "1h 30m".
func HumanDuration(mins int) string {
	if mins <= 0 {
		return "0m"
	}

	h, m := mins/60, mins%60

	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// Bar draws a width-cell meter filled to percent.
func Bar(t Theme, percent, width int) string {
	if width <= 0 {
		return ""
	}

	filled := timeutil.Clamp(percent, 0, 100) * width / 100

	return t.BarFull.Render(strings.Repeat("█", filled)) +
		t.BarRest.Render(strings.Repeat("░", width-filled))
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}

	r := []rune(s)
	if len(r) <= n {
		return s
	}

	if n == 1 {
		return string(r[:1])
	}

	return string(r[:n-1]) + "…"
}
