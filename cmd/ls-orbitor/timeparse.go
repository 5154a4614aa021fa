package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/litescript/ls-orbitor/internal/astro"
	"github.com/litescript/ls-orbitor/internal/errors"
)

// timeLayouts are tried in order after RFC3339. They carry no zone and are
// read as UTC.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTime resolves a user-supplied time to days since J2000.
// Accepted forms:
//
//	now
//	2024-03-20T03:06:00Z          (RFC3339, any offset)
//	2024-03-20 03:06[:00]         (UTC)
//	2024-03-20                    (UTC midnight)
//	J2000, J2000+8000, J2000-1.5  (days from the epoch)
func parseTime(s string, now time.Time) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "now") {
		return astro.DaysSinceJ2000(now), nil
	}

	if len(s) >= 5 && strings.EqualFold(s[:5], "J2000") {
		rest := strings.TrimSpace(s[5:])
		if rest == "" {
			return 0, nil
		}
		if rest[0] == '+' || rest[0] == '-' {
			days, err := strconv.ParseFloat(rest, 64)
			if err == nil && !math.IsInf(days, 0) && !math.IsNaN(days) {
				return days, nil
			}
		}
		return 0, invalidTime(s)
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return astro.DaysSinceJ2000(t), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return astro.DaysSinceJ2000(t), nil
		}
	}
	return 0, invalidTime(s)
}

func invalidTime(s string) error {
	return errors.NewInvalidRequest(fmt.Sprintf(
		"invalid time %q: want now, RFC3339, YYYY-MM-DD[ HH:MM[:SS]] or J2000±days", s))
}
