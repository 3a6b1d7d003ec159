package api_test

import (
	"errors"
	"testing"

	"mediaprobe/internal/api"
	"mediaprobe/internal/services"
)

func TestValidateMediaURL(t *testing.T) {
	got, err := api.ValidateMediaURL("  https://video.example/watch?v=1 ")
	if err != nil {
		t.Fatalf("ValidateMediaURL: %v", err)
	}
	if got != "https://video.example/watch?v=1" {
		t.Fatalf("expected trimmed url, got %q", got)
	}

	for _, raw := range []string{
		"",
		"   ",
		"--exec=touch /tmp/x",
		"ftp://video.example/a",
		"video.example/watch",
		"https://",
		"http://:80/path",
		"://missing-scheme",
	} {
		if _, err := api.ValidateMediaURL(raw); !errors.Is(err, services.ErrValidation) {
			t.Fatalf("ValidateMediaURL(%q) = %v, want ErrValidation", raw, err)
		}
	}
}
