package holidays

import (
	"slices"
	"strings"
	"time"
)

// DateLayout is the key format of a Set.
const DateLayout = "2006-01-02"

// Set is an immutable set of civil dates keyed by YYYY-MM-DD.
// The zero value is an empty set.
type Set struct {
	days map[string]struct{}
}

// NewSet builds a Set from date strings. Each string counts when its first ten
// characters form a valid YYYY-MM-DD date, so "2023-01-11" and
// "2023-01-11T00:00:00Z" both add 2023-01-11. Anything else is skipped.
func NewSet(dates ...string) Set {
	days := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		if key, ok := normalizeDate(d); ok {
			days[key] = struct{}{}
		}
	}
	return Set{days: days}
}

func normalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(DateLayout) {
		return "", false
	}
	key := s[:len(DateLayout)]
	if _, err := time.Parse(DateLayout, key); err != nil {
		return "", false
	}
	return key, true
}

// Contains reports whether t's calendar date, read in t's own location, is in the set.
// Callers pass business-local times.
func (s Set) Contains(t time.Time) bool {
	_, ok := s.days[t.Format(DateLayout)]
	return ok
}

// Has reports whether the YYYY-MM-DD date is in the set.
func (s Set) Has(date string) bool {
	_, ok := s.days[date]
	return ok
}

// Len returns the number of dates in the set.
func (s Set) Len() int {
	return len(s.days)
}

// Dates returns the dates in ascending order.
func (s Set) Dates() []string {
	out := make([]string, 0, len(s.days))
	for d := range s.days {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}
