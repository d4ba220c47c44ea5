package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rickb777/date/v2"
	"github.com/rickb777/period"
)

// ─────────────────────────────────────────────────────────────────────────────
// Duration rendering
// ─────────────────────────────────────────────────────────────────────────────

// HumanDuration renders d as an English phrase.
//
//	HumanDuration(90 * time.Minute) // → "1 hour, 30 minutes"
func HumanDuration(d time.Duration) string {
	if d == 0 {
		return "0 seconds"
	}
	p := period.NewOf(d)
	return p.Format()
}

// FormatISODuration renders d as an ISO-8601 period string.
//
//	FormatISODuration(26 * time.Hour) // → "P1DT2H"
func FormatISODuration(d time.Duration) string {
	p := period.NewOf(d)
	return p.String()
}

// ParseISODuration parses an ISO-8601 period string ("PT1H30M", "P2D")
// into a duration. Year and month components use the period's nominal
// conversion (365/12-day months are approximated by the period package).
func ParseISODuration(s string) (time.Duration, error) {
	p, err := period.Parse(s)
	if err != nil {
		return 0, err
	}
	d, _ := p.Duration()
	return d, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Parsing
// ─────────────────────────────────────────────────────────────────────────────

// ToSeconds parses s into a number of seconds. Accepted forms:
//
//	"01:30:00" (HH:MM:SS)   → 5400
//	"02:15"    (MM:SS)      → 135
//	"90"       (bare number)→ 90
//	"1.5h"     (Go duration)→ 5400
//
// Malformed input returns (0, false).
func ToSeconds(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, ":") {
		return clockSeconds(s)
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n, true
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d.Seconds(), true
	}
	return 0, false
}

func clockSeconds(s string) (float64, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	total := 0.0
	for _, p := range parts {
		n, err := strconv.ParseFloat(p, 64)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Relative time & calendar days
// ─────────────────────────────────────────────────────────────────────────────

// Ago renders t relative to now: "just now", "3 hours ago", "in 2 days".
func Ago(t time.Time) string {
	return RelativeTo(t, time.Now())
}

// RelativeTo renders t relative to the reference instant ref.
func RelativeTo(t, ref time.Time) string {
	diff := ref.Sub(t)
	past := diff >= 0
	if !past {
		diff = -diff
	}
	phrase := relativePhrase(diff)
	if phrase == "just now" {
		return phrase
	}
	if past {
		return phrase + " ago"
	}
	return "in " + phrase
}

func relativePhrase(d time.Duration) string {
	switch {
	case d < 45*time.Second:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	case d < 365*24*time.Hour:
		return plural(int(d/(30*24*time.Hour)), "month")
	default:
		return plural(int(d/(365*24*time.Hour)), "year")
	}
}

func plural(n int, unit string) string {
	if n <= 1 {
		n = 1
	}
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// SameDay reports whether a and b fall on the same calendar date in their
// respective locations.
func SameDay(a, b time.Time) bool {
	return date.NewAt(a) == date.NewAt(b)
}
