package handlers

import "testing"

func TestSafeDeleteUploadIgnoresEmptyAndExternal(t *testing.T) {
	if err := safeDeleteUpload(""); err != nil {
		t.Fatalf("empty path must be a no-op, got %v", err)
	}
	if err := safeDeleteUpload("https://cdn.example.com/image.png"); err != nil {
		t.Fatalf("external URL must be a no-op, got %v", err)
	}
}

func TestSafeDeleteUploadRefusesNonUploadPaths(t *testing.T) {
	refused := []string{
		"/public/index.html",
		"/etc/passwd",
		"uploads/../secrets.txt",
		"/public/uploads/../../main.go",
	}
	for _, path := range refused {
		if err := safeDeleteUpload(path); err == nil {
			t.Fatalf("expected refusal for %q", path)
		}
	}
}

func TestSafeDeleteUploadMissingFileIsNoError(t *testing.T) {
	if err := safeDeleteUpload("/public/uploads/does-not-exist.png"); err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
}
