package handlers

import "testing"

func TestParsePaginationParamsDefaults(t *testing.T) {
	page, limit, err := parsePaginationParams("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 1 || limit != 10 {
		t.Fatalf("expected defaults page=1 limit=10, got page=%d limit=%d", page, limit)
	}
}

func TestParsePaginationParamsExplicit(t *testing.T) {
	page, limit, err := parsePaginationParams("3", "25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 3 || limit != 25 {
		t.Fatalf("got page=%d limit=%d", page, limit)
	}
}

func TestParsePaginationParamsRejectsInvalid(t *testing.T) {
	invalid := [][2]string{
		{"0", "10"},
		{"-1", "10"},
		{"1", "0"},
		{"1", "-5"},
		{"abc", "10"},
		{"1", "abc"},
	}
	for _, pair := range invalid {
		if _, _, err := parsePaginationParams(pair[0], pair[1]); err == nil {
			t.Fatalf("expected error for page=%q limit=%q", pair[0], pair[1])
		}
	}
}
