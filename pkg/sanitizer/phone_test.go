package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid E.164 format",
			input: "+51987654321",
			want:  "+51987654321",
		},
		{
			name:  "with spaces",
			input: "+51 987 654 321",
			want:  "+51987654321",
		},
		{
			name:  "local number gets default region",
			input: "987654321",
			want:  "+51987654321",
		},
		{
			name:  "with parentheses",
			input: "+1 (212) 555-1234",
			want:  "+12125551234",
		},
		{
			name:  "leading and trailing spaces",
			input: "  +51987654321  ",
			want:  "+51987654321",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "unparsable input kept as typed",
			input: " not-a-phone ",
			want:  "not-a-phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
