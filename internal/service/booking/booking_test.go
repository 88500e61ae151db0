package booking

import (
	"testing"
	"time"
)

func TestLateCancellation(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}

	// 2025-06-10 12:00 in New York is 16:00 UTC.
	nyNoon := time.Date(2025, 6, 10, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		date, start string
		loc         *time.Location
		windowHours int
		now         time.Time
		want        bool
	}{
		{
			name: "well before the window",
			date: "2025-06-10", start: "12:00",
			loc:         newYork,
			windowHours: 24,
			now:         nyNoon.Add(-48 * time.Hour),
			want:        false,
		},
		{
			name: "inside the window",
			date: "2025-06-10", start: "12:00",
			loc:         newYork,
			windowHours: 24,
			now:         nyNoon.Add(-2 * time.Hour),
			want:        true,
		},
		{
			// 25h out in New York time. A UTC-anchored parse would place the
			// start 4h earlier and wrongly charge the fee.
			name: "just outside the window in the business zone",
			date: "2025-06-10", start: "12:00",
			loc:         newYork,
			windowHours: 24,
			now:         nyNoon.Add(-25 * time.Hour),
			want:        false,
		},
		{
			name: "same instant is late under UTC anchoring",
			date: "2025-06-10", start: "12:00",
			loc:         time.UTC,
			windowHours: 24,
			now:         nyNoon.Add(-25 * time.Hour),
			want:        true,
		},
		{
			name: "unparseable start is never late",
			date: "2025-06-10", start: "noonish",
			loc:         newYork,
			windowHours: 24,
			now:         nyNoon,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lateCancellation(tt.date, tt.start, tt.loc, tt.windowHours, tt.now)
			if got != tt.want {
				t.Errorf("lateCancellation(%s %s, %s, %dh) = %v, want %v",
					tt.date, tt.start, tt.loc, tt.windowHours, got, tt.want)
			}
		})
	}
}
