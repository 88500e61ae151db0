package business

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "Acme Salon", "acme-salon"},
		{"already a slug", "acme-salon", "acme-salon"},
		{"mixed case with digits", "Studio 54", "studio-54"},
		{"punctuation dropped", "Bob's Barber Shop!", "bobs-barber-shop"},
		{"surrounding whitespace", "  Glow Spa  ", "glow-spa"},
		{"trailing separators trimmed", "-Glow Spa-", "glow-spa"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slugify(tt.in); got != tt.want {
				t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{"owner", "admin", "provider", "assistant"} {
		if !isValidRole(role) {
			t.Errorf("isValidRole(%q) = false, want true", role)
		}
	}
	for _, role := range []string{"", "customer", "superadmin", "Owner"} {
		if isValidRole(role) {
			t.Errorf("isValidRole(%q) = true, want false", role)
		}
	}
}
