package bizcal

import "time"

// AddDays moves t forward by n business days. Only the date changes: every
// step lands on t's hour and minute with seconds zeroed, whatever the work
// windows say. n <= 0 returns t unchanged.
func AddDays(t time.Time, n int, h Holidays) time.Time {
	hour, minute := t.Hour(), t.Minute()
	cur := t
	for ; n > 0; n-- {
		cur = cur.AddDate(0, 0, 1)
		for !IsBusinessDay(cur, h) {
			cur = cur.AddDate(0, 0, 1)
		}
		cur = time.Date(cur.Year(), cur.Month(), cur.Day(), hour, minute, 0, 0, cur.Location())
	}
	return cur
}

// AddHours moves t forward by n business hours, spending the budget one work
// window at a time. Lunch, nights, weekends and holidays cost nothing.
// Seconds of t count against the budget; the result has them zeroed.
// n <= 0 returns t unchanged.
func AddHours(t time.Time, n int, h Holidays) time.Time {
	if n <= 0 {
		return t
	}

	remaining := time.Duration(n) * time.Hour
	cur := t

	for remaining > 0 {
		cur = SnapForward(cur, h)

		morning := InMorning(cur)
		end := at(cur, AfternoonEnd)
		if morning {
			end = at(cur, MorningEnd)
		}

		available := end.Sub(cur)
		if remaining <= available {
			done := cur.Add(remaining)
			return at(done, clock(done))
		}

		remaining -= available
		if morning {
			cur = at(cur, AfternoonStart)
		} else {
			cur = nextOpen(cur, h)
		}
	}

	return cur
}
