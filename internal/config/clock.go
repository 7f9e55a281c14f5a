package config

import (
	"fmt"
	"shipment-routing-service/internal/pkg/errs"
	"strings"
	"time"
)

var clockLayouts = []string{"15:04:05", "15:04"}

// ParseClock parses a wall-clock time ("HH:MM:SS" or "HH:MM") on the given day.
func ParseClock(day time.Time, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, day.Location()), nil
		}
	}
	return time.Time{}, errs.NewInvalidInputErrorWithCause("time", fmt.Errorf("%q is not in HH:MM:SS format", s))
}

// ParseDay parses a service date in YYYY-MM-DD format (UTC).
func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.NewInvalidInputErrorWithCause("service date", err)
	}
	return d, nil
}
