package tzconvert

import (
	"errors"
	"testing"
	"time"
)

func TestToLocal(t *testing.T) {
	tests := []struct {
		name    string
		utc     string
		want    string // local wall clock
		weekday time.Weekday
	}{
		// Bogota is UTC-5 all year
		{"Friday close of business", "2023-01-06T22:00:00Z", "2023-01-06 17:00:00", time.Friday},
		{"Friday opening", "2023-01-06T13:00:00Z", "2023-01-06 08:00:00", time.Friday},
		{"midnight UTC is previous local day", "2023-01-10T00:00:00Z", "2023-01-09 19:00:00", time.Monday},
		{"fractional seconds", "2023-01-10T13:00:00.250Z", "2023-01-10 08:00:00", time.Tuesday},
		{"no seconds", "2023-01-10T13:30Z", "2023-01-10 08:30:00", time.Tuesday},
		{"surrounding whitespace", " 2023-01-10T13:00:00Z ", "2023-01-10 08:00:00", time.Tuesday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToLocal(tt.utc)
			if err != nil {
				t.Fatalf("ToLocal(%q) error: %v", tt.utc, err)
			}
			if s := got.Format("2006-01-02 15:04:05"); s != tt.want {
				t.Errorf("ToLocal(%q) = %s, want %s", tt.utc, s, tt.want)
			}
			if got.Weekday() != tt.weekday {
				t.Errorf("ToLocal(%q) weekday = %v, want %v", tt.utc, got.Weekday(), tt.weekday)
			}
			if got.Location() != Location() {
				t.Errorf("ToLocal(%q) location = %v, want %v", tt.utc, got.Location(), Location())
			}
		})
	}
}

func TestToLocalInvalid(t *testing.T) {
	inputs := []string{
		"",
		"yesterday",
		"2023-01-06",
		"2023-01-06T22:00:00",
		"2023-01-06T22:00:00+00:00",
		"2023-01-06T17:00:00-05:00",
		"2023-13-06T22:00:00Z",
		"2023-02-30T10:00:00Z",
		"Z",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ToLocal(in)
			if err == nil {
				t.Fatalf("ToLocal(%q) succeeded, want error", in)
			}
			if !errors.Is(err, ErrInvalidTimestamp) {
				t.Errorf("ToLocal(%q) error = %v, want ErrInvalidTimestamp", in, err)
			}
		})
	}
}

func TestToUTC(t *testing.T) {
	loc := Location()
	tests := []struct {
		name  string
		local time.Time
		want  string
	}{
		{"whole minute", time.Date(2023, 1, 9, 9, 0, 0, 0, loc), "2023-01-09T14:00:00Z"},
		{"drops fraction", time.Date(2023, 1, 9, 9, 0, 42, 999_000_000, loc), "2023-01-09T14:00:42Z"},
		{"crosses midnight", time.Date(2023, 1, 9, 20, 15, 0, 0, loc), "2023-01-10T01:15:00Z"},
		{"already UTC", time.Date(2023, 1, 9, 14, 0, 0, 0, time.UTC), "2023-01-09T14:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToUTC(tt.local); got != tt.want {
				t.Errorf("ToUTC(%v) = %s, want %s", tt.local, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// ToUTC(ToLocal(ToUTC(t))) must equal ToUTC(t) for any instant
	loc := Location()
	start := time.Date(2023, 1, 1, 0, 0, 0, 123_456_789, loc)

	for i := 0; i < 500; i++ {
		local := start.Add(time.Duration(i)*7*time.Hour + time.Duration(i)*13*time.Second)
		first := ToUTC(local)
		parsed, err := ToLocal(first)
		if err != nil {
			t.Fatalf("ToLocal(%q) error: %v", first, err)
		}
		if second := ToUTC(parsed); second != first {
			t.Errorf("round trip: %s -> %v -> %s", first, parsed, second)
		}
	}
}

func TestNowIsLocal(t *testing.T) {
	if got := Now().Location(); got != Location() {
		t.Errorf("Now() location = %v, want %v", got, Location())
	}
}
