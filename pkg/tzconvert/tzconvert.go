// Package tzconvert converts between UTC timestamps and business-local time.
// ALL timestamps crossing a package boundary are UTC strings.
// Calendar arithmetic happens on business-local time.Time values only.
package tzconvert

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // embedded zone database, the host may not ship one
)

// Zone is the IANA name of the business-local timezone.
const Zone = "America/Bogota"

// UTCLayout is the canonical output layout: second precision with a Z marker.
const UTCLayout = "2006-01-02T15:04:05Z"

// shortLayout accepts timestamps without seconds, e.g. "2023-01-06T22:00Z".
const shortLayout = "2006-01-02T15:04Z"

// ErrInvalidTimestamp is wrapped by every ToLocal failure.
var ErrInvalidTimestamp = errors.New("invalid UTC timestamp")

var location = mustLoad(Zone)

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// Bogota has had no DST since 1993; the fixed offset is exact for any
		// date this service computes.
		return time.FixedZone("-05", -5*60*60)
	}
	return loc
}

// Location returns the business-local location.
func Location() *time.Location {
	return location
}

// Now returns the current instant in business-local time.
func Now() time.Time {
	return time.Now().In(location)
}

// ToLocal parses a UTC-marked ISO-8601 timestamp and returns the same instant
// in business-local time.
// Example: ToLocal("2023-01-06T22:00:00Z") is Friday 17:00 in Bogota.
//
// Accepted forms:
//   - "2023-01-06T22:00:00Z"
//   - "2023-01-06T22:00:00.123Z"
//   - "2023-01-06T22:00Z"
//
// Numeric offsets ("+00:00", "-05:00") are rejected: the caller must normalize to UTC first.
func ToLocal(utc string) (time.Time, error) {
	s := strings.TrimSpace(utc)
	if !strings.HasSuffix(s, "Z") {
		return time.Time{}, fmt.Errorf("%w: %q has no Z marker", ErrInvalidTimestamp, utc)
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		var shortErr error
		t, shortErr = time.Parse(shortLayout, s)
		if shortErr != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %w", ErrInvalidTimestamp, utc, err)
		}
	}

	return t.In(location), nil
}

// ToUTC renders t as a canonical UTC string truncated to whole seconds.
// Example: ToUTC(Monday 09:00:42.5 in Bogota) returns "2023-01-09T14:00:42Z".
func ToUTC(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(UTCLayout)
}
