package bizcal

import (
	"testing"
	"time"

	"github.com/codeGROOVE-dev/workday/pkg/holidays"
)

func TestAddDays(t *testing.T) {
	tests := []struct {
		name     string
		when     string
		days     int
		holidays []string
		want     string
	}{
		{"friday close plus one", "2023-01-06 17:00", 1, nil, "2023-01-09 17:00"},
		{"skips holiday", "2023-01-10 08:00", 1, []string{"2023-01-11"}, "2023-01-12 08:00"},
		{"seconds zeroed", "2023-01-10 10:30:45", 2, nil, "2023-01-12 10:30"},
		{"full week", "2023-01-06 09:00", 5, nil, "2023-01-13 09:00"},
		{"skips weekend and holidays", "2023-01-05 12:00", 1, []string{"2023-01-06", "2023-01-09"}, "2023-01-10 12:00"},
		{"keeps time outside windows", "2023-01-10 12:00", 1, nil, "2023-01-11 12:00"},
		{"zero is a no-op", "2023-01-10 10:30:45", 0, nil, "2023-01-10 10:30:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := holidays.NewSet(tt.holidays...)
			got := AddDays(local(t, tt.when), tt.days, h)
			if want := local(t, tt.want); !got.Equal(want) {
				t.Errorf("AddDays(%s, %d) = %s, want %s", tt.when, tt.days, got.Format(time.DateTime), want.Format(time.DateTime))
			}
		})
	}
}

func TestAddDaysLandsOnBusinessDays(t *testing.T) {
	h := holidays.NewSet("2023-01-09", "2023-01-11", "2023-01-20", "2023-01-23")
	start := local(t, "2023-01-04 00:00")

	for i := 0; i < 7*24; i++ {
		v := start.Add(time.Duration(i)*time.Hour + time.Duration(i%60)*time.Minute)
		for n := 1; n <= 12; n++ {
			got := AddDays(v, n, h)
			if !IsBusinessDay(got, h) {
				t.Fatalf("AddDays(%s, %d) = %s is not a business day", v.Format(time.DateTime), n, got.Format(time.DateTime))
			}
			if got.Hour() != v.Hour() || got.Minute() != v.Minute() || got.Second() != 0 {
				t.Fatalf("AddDays(%s, %d) = %s changed the time of day", v.Format(time.DateTime), n, got.Format(time.DateTime))
			}
			if !got.After(v) {
				t.Fatalf("AddDays(%s, %d) = %s did not move forward", v.Format(time.DateTime), n, got.Format(time.DateTime))
			}
		}
	}
}

func TestAddHours(t *testing.T) {
	tests := []struct {
		name     string
		when     string
		hours    int
		holidays []string
		want     string
	}{
		{"friday close", "2023-01-06 17:00", 1, nil, "2023-01-09 09:00"},
		{"whole morning", "2023-01-10 08:00", 4, nil, "2023-01-10 12:00"},
		{"spans lunch", "2023-01-10 11:30", 1, nil, "2023-01-10 13:30"},
		{"spans night", "2023-01-10 16:00", 2, nil, "2023-01-11 09:00"},
		{"spans night and holiday", "2023-01-10 16:00", 2, []string{"2023-01-11"}, "2023-01-12 09:00"},
		{"spans weekend", "2023-01-06 16:30", 1, nil, "2023-01-09 08:30"},
		{"whole day", "2023-01-10 08:00", 8, nil, "2023-01-10 17:00"},
		{"day and an hour", "2023-01-10 08:00", 9, nil, "2023-01-11 09:00"},
		{"starts at lunch", "2023-01-10 12:30", 1, nil, "2023-01-10 14:00"},
		{"starts on saturday", "2023-01-07 14:00", 3, nil, "2023-01-09 11:00"},
		{"starts before opening", "2023-01-10 06:00", 5, nil, "2023-01-10 14:00"},
		{"seconds dropped", "2023-01-10 10:15:40", 1, nil, "2023-01-10 11:15"},
		{"seconds past the hour before noon", "2023-01-10 11:00:30", 1, nil, "2023-01-10 13:00"},
		{"seconds past the hour before close", "2023-01-10 16:00:30", 1, nil, "2023-01-11 08:00"},
		{"seconds spill over a weekend", "2023-01-06 16:00:30", 1, nil, "2023-01-09 08:00"},
		{"seconds with room to spare", "2023-01-10 10:59:30", 1, nil, "2023-01-10 11:59"},
		{"a week of hours", "2023-01-09 08:00", 40, nil, "2023-01-13 17:00"},
		{"zero is a no-op", "2023-01-10 12:30", 0, nil, "2023-01-10 12:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := holidays.NewSet(tt.holidays...)
			got := AddHours(local(t, tt.when), tt.hours, h)
			if want := local(t, tt.want); !got.Equal(want) {
				t.Errorf("AddHours(%s, %d) = %s, want %s", tt.when, tt.hours, got.Format(time.DateTime), want.Format(time.DateTime))
			}
		})
	}
}

// workedMinutes counts working minutes in [from, to).
func workedMinutes(from, to time.Time, h Holidays) int {
	n := 0
	for m := from; m.Before(to); m = m.Add(time.Minute) {
		if IsBusinessDay(m, h) && (InMorning(m) || InAfternoon(m)) {
			n++
		}
	}
	return n
}

func TestAddHoursConsumesBudget(t *testing.T) {
	h := holidays.NewSet("2023-01-11", "2023-01-16")
	start := local(t, "2023-01-06 00:00")

	for i := 0; i < 7*24*60/37; i++ {
		v := start.Add(time.Duration(i*37) * time.Minute)
		for _, n := range []int{1, 3, 4, 9, 20} {
			got := AddHours(v, n, h)

			if !IsBusinessDay(got, h) {
				t.Fatalf("AddHours(%s, %d) = %s is not a business day", v.Format(time.DateTime), n, got.Format(time.DateTime))
			}
			c := clock(got)
			if c <= MorningStart || c > AfternoonEnd || (c > MorningEnd && c <= AfternoonStart) {
				t.Fatalf("AddHours(%s, %d) = %s ends outside working time", v.Format(time.DateTime), n, got.Format(time.DateTime))
			}
			if worked := workedMinutes(v, got, h); worked != n*60 {
				t.Fatalf("AddHours(%s, %d) = %s consumed %d minutes, want %d", v.Format(time.DateTime), n, got.Format(time.DateTime), worked, n*60)
			}
		}
	}
}
