package customer

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	strptr := func(s string) *string { return &s }

	tests := []struct {
		name    string
		in      *string
		want    string
		wantNil bool
		wantErr error
	}{
		{"nil passes through", nil, "", true, nil},
		{"empty clears", strptr(""), "", true, nil},
		{"whitespace only clears", strptr("   "), "", true, nil},
		{"e164 kept", strptr("+14155552671"), "+14155552671", false, nil},
		{"national formatted to e164", strptr("(415) 555-2671"), "+14155552671", false, nil},
		{"international outside default region", strptr("+442071838750"), "+442071838750", false, nil},
		{"too short", strptr("12345"), "", false, ErrInvalidPhone},
		{"garbage", strptr("not-a-number"), "", false, ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePhone(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("normalizePhone() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if tt.wantNil {
				if got != nil {
					t.Fatalf("normalizePhone() = %q, want nil", *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("normalizePhone() = %v, want %q", got, tt.want)
			}
		})
	}
}
