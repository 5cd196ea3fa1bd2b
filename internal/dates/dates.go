// Package dates parses the appointment times accepted on the command line.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the accepted date-only form.
const DateLayout = "2006-01-02"

var (
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRegex = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// Layouts without a zone are interpreted in the caller's location.
var localLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

var relativeDays = map[string]int{
	"yesterday": -1,
	"today":     0,
	"tomorrow":  1,
}

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDatetime parses an appointment time. Accepted forms:
//   - YYYY-MM-DD HH:MM
//   - YYYY-MM-DDTHH:MM and YYYY-MM-DDTHH:MM:SS
//   - RFC3339 (e.g. 2026-10-14T09:00:00+08:00)
//   - today/tomorrow/yesterday followed by HH:MM
//
// Forms without an offset use now's location.
func ParseDatetime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("invalid datetime: empty")
	}
	loc := now.Location()

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if t, ok := parseRelative(s, now); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q, use YYYY-MM-DD HH:MM", s)
}

// parseRelative handles "tomorrow 09:30".
func parseRelative(s string, now time.Time) (time.Time, bool) {
	day, clock, ok := strings.Cut(strings.ToLower(s), " ")
	if !ok {
		return time.Time{}, false
	}
	offset, ok := relativeDays[day]
	clock = strings.TrimSpace(clock)
	if !ok || !clockRegex.MatchString(clock) {
		return time.Time{}, false
	}
	hm, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	d := now.AddDate(0, 0, offset)
	return time.Date(d.Year(), d.Month(), d.Day(), hm.Hour(), hm.Minute(), 0, 0, now.Location()), true
}
