package instrumentation

import "testing"

func TestExtractUserDomain(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"jane@example.com", "example.com"},
		{"user@gmail.com", "gmail.com"},
		{"invalid", "unknown"},
		{"", "unknown"},
		{"trailing@", "unknown"},
		{"a@b@c", "unknown"},
	}

	for _, tt := range tests {
		if got := ExtractUserDomain(tt.email); got != tt.want {
			t.Errorf("ExtractUserDomain(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}
