// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is only used for
// deciding date boundaries, which matters here for the year a document
// number is allocated in.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Europe/Paris"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone, defaulting to UTC when Init was
// never called (tests, one-off tools).
func Location() *time.Location {
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// BusinessYear returns the calendar year of t in the business timezone.
// Document sequence scopes roll over on this boundary.
func BusinessYear(t time.Time) int {
	return t.In(Location()).Year()
}

// StartOfYearUTC returns the UTC instant at which the given business year starts.
func StartOfYearUTC(year int) (time.Time, error) {
	if year < 1 {
		return time.Time{}, fmt.Errorf("invalid year %d", year)
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, Location()).UTC(), nil
}
