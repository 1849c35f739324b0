// Package bizcal implements the business calendar: Monday to Friday,
// 08:00-12:00 and 13:00-17:00 local time, minus holidays.
//
// All functions take business-local times and never change their location.
package bizcal

import "time"

// Work window boundaries as offsets from local midnight.
const (
	MorningStart   = 8 * time.Hour
	MorningEnd     = 12 * time.Hour
	AfternoonStart = 13 * time.Hour
	AfternoonEnd   = 17 * time.Hour
)

// Holidays reports whether a local calendar date is a holiday.
// holidays.Set satisfies it.
type Holidays interface {
	Contains(t time.Time) bool
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether t's calendar date is in h. A nil h has no holidays.
func IsHoliday(t time.Time, h Holidays) bool {
	return h != nil && h.Contains(t)
}

// IsBusinessDay reports whether t falls on a weekday that is not a holiday.
func IsBusinessDay(t time.Time, h Holidays) bool {
	return !IsWeekend(t) && !IsHoliday(t, h)
}

// InMorning reports whether t's time of day is within [08:00, 12:00).
func InMorning(t time.Time) bool {
	c := clock(t)
	return c >= MorningStart && c < MorningEnd
}

// InAfternoon reports whether t's time of day is within [13:00, 17:00).
func InAfternoon(t time.Time) bool {
	c := clock(t)
	return c >= AfternoonStart && c < AfternoonEnd
}

// clock returns the wall-clock time of day of t.
func clock(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

// at returns t's calendar day at the wall-clock time of day c, seconds zeroed.
func at(t time.Time, c time.Duration) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, int(c/time.Hour), int(c%time.Hour/time.Minute), 0, 0, t.Location())
}

// dayOffset returns noon of the calendar day n days away from t.
// Noon keeps day stepping clear of DST transitions, which happen at night.
func dayOffset(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 12, 0, 0, 0, t.Location())
}

// previousClose returns 17:00 of the nearest business day strictly before t's day.
func previousClose(t time.Time, h Holidays) time.Time {
	d := dayOffset(t, -1)
	for !IsBusinessDay(d, h) {
		d = dayOffset(d, -1)
	}
	return at(d, AfternoonEnd)
}

// nextOpen returns 08:00 of the nearest business day strictly after t's day.
func nextOpen(t time.Time, h Holidays) time.Time {
	d := dayOffset(t, 1)
	for !IsBusinessDay(d, h) {
		d = dayOffset(d, 1)
	}
	return at(d, MorningStart)
}
