package scheduling

import (
	"errors"
	"testing"
)

func TestValidateWindow(t *testing.T) {
	tests := []struct {
		name    string
		dow     int
		start   string
		end     string
		wantErr error
	}{
		{"valid window", 1, "09:00", "17:00", nil},
		{"midnight to end of day", 0, "00:00", "23:59", nil},
		{"day of week too low", -1, "09:00", "17:00", ErrInvalidDayOfWeek},
		{"day of week too high", 7, "09:00", "17:00", ErrInvalidDayOfWeek},
		{"bad start time", 1, "9:00", "17:00", ErrInvalidTime},
		{"bad end time", 1, "09:00", "25:00", ErrInvalidTime},
		{"start equals end", 1, "09:00", "09:00", ErrInvalidTimeRange},
		{"start after end", 1, "17:00", "09:00", ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWindow(tt.dow, tt.start, tt.end)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateWindow() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDateBounds(t *testing.T) {
	strptr := func(s string) *string { return &s }

	tests := []struct {
		name      string
		effective *string
		expiry    *string
		wantErr   error
	}{
		{"both nil", nil, nil, nil},
		{"effective only", strptr("2025-06-01"), nil, nil},
		{"both set in order", strptr("2025-06-01"), strptr("2025-06-30"), nil},
		{"same day window", strptr("2025-06-01"), strptr("2025-06-01"), nil},
		{"expiry without effective", nil, strptr("2025-06-30"), ErrExpiryWithoutEffective},
		{"expiry before effective", strptr("2025-06-30"), strptr("2025-06-01"), ErrExpiryBeforeEffective},
		{"malformed effective", strptr("06/01/2025"), nil, ErrInvalidDate},
		{"malformed expiry", strptr("2025-06-01"), strptr("2025-6-30"), ErrInvalidDate},
		{"impossible calendar date", strptr("2025-02-30"), nil, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDateBounds(tt.effective, tt.expiry)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateDateBounds() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
