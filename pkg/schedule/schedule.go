// Package schedule draws the business calendar between two instants as a
// per-day strip of half-hour buckets.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/workday/pkg/bizcal"
	"github.com/fatih/color"
)

const (
	firstHour = 6
	lastHour  = 19 // exclusive
	maxDays   = 31

	bucketSize = 30 * time.Minute
)

// Bucket symbols.
const (
	symWork   = "█"
	symLunch  = "L"
	symOff    = "·"
	symClosed = "░"
	symStart  = "S"
	symResult = "R"
)

// Render returns one line per calendar day from from's day through to's day.
// Both instants must be business-local. The bucket holding from is marked S
// and the bucket holding to is marked R.
//
//	          06070809101112131415161718
//	Fri 01-06 ····████████LL████████S···
//	Sat 01-07 ░░░░░░░░░░░░░░░░░░░░░░░░░░ weekend
func Render(from, to time.Time, h bizcal.Holidays) string {
	var out strings.Builder

	work := color.New(color.FgGreen)
	lunch := color.New(color.FgYellow)
	off := color.New(color.FgHiBlack)
	closed := color.New(color.FgRed)
	mark := color.New(color.FgCyan, color.Bold)

	out.WriteString(header())

	day := midnight(from)
	last := midnight(to)
	for n := 0; !day.After(last); n++ {
		if n == maxDays {
			remaining := int(last.Sub(day).Hours()/24) + 1
			out.WriteString(fmt.Sprintf("… %d more day(s)\n", remaining))
			break
		}

		line := day.Format("Mon 01-02") + " "
		businessDay := bizcal.IsBusinessDay(day, h)

		for hour := firstHour; hour < lastHour; hour++ {
			for half := range 2 {
				start := time.Date(day.Year(), day.Month(), day.Day(), hour, half*30, 0, 0, day.Location())
				end := start.Add(bucketSize)

				switch {
				case contains(start, end, from):
					line += mark.Sprint(symStart)
				case contains(start, end, to):
					line += mark.Sprint(symResult)
				case !businessDay:
					line += closed.Sprint(symClosed)
				case bizcal.InMorning(start) || bizcal.InAfternoon(start):
					line += work.Sprint(symWork)
				case start.Hour() == 12:
					line += lunch.Sprint(symLunch)
				default:
					line += off.Sprint(symOff)
				}
			}
		}

		switch {
		case bizcal.IsWeekend(day):
			line += off.Sprint(" weekend")
		case bizcal.IsHoliday(day, h):
			line += closed.Sprint(" holiday")
		}

		out.WriteString(line + "\n")
		day = time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, day.Location())
	}

	return out.String()
}

func header() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", len("Mon 01-02 ")))
	for hour := firstHour; hour < lastHour; hour++ {
		b.WriteString(fmt.Sprintf("%02d", hour))
	}
	b.WriteString("\n")
	return b.String()
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// contains reports whether t is in [start, end).
func contains(start, end, t time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
