package availability

import (
	"testing"
	"time"
)

func TestWeekdayKnownDates(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2025-03-09", 0}, // Sunday, US DST spring-forward date
		{"2025-03-10", 1}, // Monday
		{"2025-06-01", 0},
		{"2025-06-07", 6},
		{"2024-02-29", 4}, // leap day, Thursday
		{"2000-01-01", 6},
		{"1970-01-01", 4},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := ParseDate(tt.date)
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.date, err)
			}
			if got := d.Weekday(); got != tt.want {
				t.Errorf("Weekday() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeekdayTimezoneInvariance(t *testing.T) {
	// Offsets spanning the full range a caller's system zone could have.
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC-12", -12*3600),
		time.FixedZone("UTC-5", -5*3600),
		time.FixedZone("UTC+3:30", 3*3600+1800),
		time.FixedZone("UTC+14", 14*3600),
	}

	// 16 consecutive days crossing two month boundaries (Feb→Mar→Apr via two
	// windows) and the 2025-03-09 US DST transition.
	start := NewDate(2025, time.February, 26)
	for i := 0; i < 16; i++ {
		d := start.AddDays(i)
		want := d.Weekday()
		for _, loc := range zones {
			// A caller that builds a midnight timestamp in its own zone and
			// extracts the displayed calendar date must land on the same
			// weekday as the plain triple.
			viaZone := DateOf(time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc))
			if got := viaZone.Weekday(); got != want {
				t.Errorf("date %s in %s: Weekday() = %d, want %d", d, loc, got, want)
			}
		}
	}
}

func TestDateString(t *testing.T) {
	tests := []struct {
		d    Date
		want string
	}{
		{NewDate(2025, time.March, 10), "2025-03-10"},
		{NewDate(2025, time.December, 1), "2025-12-01"},
		{NewDate(999, time.January, 5), "0999-01-05"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAddDaysNormalizes(t *testing.T) {
	d := NewDate(2025, time.February, 27).AddDays(3)
	if got := d.String(); got != "2025-03-02" {
		t.Errorf("AddDays crossing month boundary = %s, want 2025-03-02", got)
	}

	d = NewDate(2024, time.March, 1).AddDays(-1)
	if got := d.String(); got != "2024-02-29" {
		t.Errorf("AddDays into leap day = %s, want 2024-02-29", got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "2025-3-10", "10-03-2025", "2025-13-01", "garbage"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) expected error, got nil", s)
		}
	}
}

func TestBefore(t *testing.T) {
	a := NewDate(2025, time.May, 31)
	b := NewDate(2025, time.June, 1)
	if !a.Before(b) {
		t.Error("expected 2025-05-31 before 2025-06-01")
	}
	if b.Before(a) {
		t.Error("did not expect 2025-06-01 before 2025-05-31")
	}
	if a.Before(a) {
		t.Error("a date is not before itself")
	}
}
