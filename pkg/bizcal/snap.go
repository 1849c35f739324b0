package bizcal

import "time"

// SnapBackward moves t back to the nearest valid working instant. It runs
// before adding business days.
//
//   - non-business day or before 08:00: 17:00 of the previous business day
//   - lunch [12:00, 13:00): 12:00 the same day
//   - inside a work window: unchanged
//   - at or after 17:00: 17:00 the same day
func SnapBackward(t time.Time, h Holidays) time.Time {
	if !IsBusinessDay(t, h) {
		return previousClose(t, h)
	}

	switch c := clock(t); {
	case c < MorningStart:
		return previousClose(t, h)
	case c < MorningEnd:
		return t
	case c < AfternoonStart:
		return at(t, MorningEnd)
	case c < AfternoonEnd:
		return t
	}

	// Unreachable while the business-day check above stays first.
	if !IsBusinessDay(t, h) {
		return previousClose(t, h)
	}
	return at(t, AfternoonEnd)
}

// SnapForward moves t forward to the nearest valid working instant. It runs
// before adding business hours.
//
//   - non-business day or at/after 17:00: 08:00 of the next business day
//   - before 08:00: 08:00 the same day
//   - lunch [12:00, 13:00): 13:00 the same day
//   - inside a work window: unchanged
func SnapForward(t time.Time, h Holidays) time.Time {
	if !IsBusinessDay(t, h) {
		return nextOpen(t, h)
	}

	switch c := clock(t); {
	case c < MorningStart:
		return at(t, MorningStart)
	case c < MorningEnd:
		return t
	case c < AfternoonStart:
		return at(t, AfternoonStart)
	case c < AfternoonEnd:
		return t
	default:
		return nextOpen(t, h)
	}
}
