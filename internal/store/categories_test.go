package store

import "testing"

func TestNormalizeCategoryNameUppercasesAndTrims(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"kilif", "KILIF"},
		{"KILIF", "KILIF"},
		{"  kulaklik  ", "KULAKLIK"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeCategoryName(tt.in); got != tt.want {
			t.Fatalf("NormalizeCategoryName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCategoryNameIsIdempotent(t *testing.T) {
	once := NormalizeCategoryName("kilif")
	twice := NormalizeCategoryName(once)
	if once != twice {
		t.Fatalf("normalization not idempotent: %q != %q", once, twice)
	}
}
