package availability

import "testing"

func TestValidTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"9:30", false},
		{"09:3", false},
		{"0930", false},
		{"09-30", false},
		{"ab:cd", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ValidTime(tt.in); got != tt.want {
				t.Errorf("ValidTime(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
