package holidays

import (
	"slices"
	"testing"
	"time"
)

func TestNewSet(t *testing.T) {
	s := NewSet("2023-01-11", " 2023-03-20 ", "2023-04-07T00:00:00Z", "2023-01-11", "garbage", "", "2023-13-01", "20230101")

	want := []string{"2023-01-11", "2023-03-20", "2023-04-07"}
	if got := s.Dates(); !slices.Equal(got, want) {
		t.Errorf("Dates() = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if !s.Has("2023-04-07") || s.Has("garbage") {
		t.Errorf("Has() mismatch for %v", s.Dates())
	}
}

func TestSetContains(t *testing.T) {
	s := NewSet("2023-01-11")
	bogota := time.FixedZone("-05", -5*60*60)

	tests := []struct {
		when time.Time
		want bool
	}{
		{time.Date(2023, 1, 11, 0, 0, 0, 0, bogota), true},
		{time.Date(2023, 1, 11, 23, 59, 59, 0, bogota), true},
		{time.Date(2023, 1, 12, 0, 0, 0, 0, bogota), false},
		{time.Date(2023, 1, 10, 23, 59, 59, 0, bogota), false},
	}

	for _, tt := range tests {
		if got := s.Contains(tt.when); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.when, got, tt.want)
		}
	}
}

func TestZeroSet(t *testing.T) {
	var s Set
	if s.Len() != 0 || s.Has("2023-01-01") || s.Contains(time.Now()) {
		t.Error("zero Set must be empty")
	}
	if got := s.Dates(); len(got) != 0 {
		t.Errorf("Dates() = %v, want empty", got)
	}
}
