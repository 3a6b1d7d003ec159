package extraction

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mediaprobe/internal/services"
)

func TestClassify(t *testing.T) {
	exitErr := errors.New("exit status 1")
	cases := []struct {
		name   string
		err    error
		stderr string
		marker error
	}{
		{"deadline", fmt.Errorf("run: %w", context.DeadlineExceeded), "", services.ErrTimeout},
		{"unsupported", exitErr, "ERROR: Unsupported URL: https://example.com/page", services.ErrUnsupportedSource},
		{"not a url", exitErr, "ERROR: [generic] 'foo' is not a valid URL.", services.ErrInvalidURL},
		{"dns", exitErr, "WARNING: retrying\nERROR: Unable to download webpage: <urlopen error [Errno -2] Name or service not known>", services.ErrInvalidURL},
		{"404", exitErr, "ERROR: Unable to download webpage: HTTP Error 404: Not Found", services.ErrInvalidURL},
		{"other", exitErr, "ERROR: Sign in to confirm your age", services.ErrExtractionFailed},
		{"no stderr", exitErr, "", services.ErrExtractionFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.err, tc.stderr)
			if !errors.Is(got, tc.marker) {
				t.Fatalf("expected %v, got %v", tc.marker, got)
			}
			if !errors.Is(got, tc.err) {
				t.Fatalf("expected original error to stay wrapped, got %v", got)
			}
		})
	}
	if Classify(nil, "ERROR: anything") != nil {
		t.Fatal("expected nil error to classify as nil")
	}
}

func TestEngineMessagePrefersErrorLine(t *testing.T) {
	stderr := "[youtube] abc: Downloading webpage\nERROR: first\nERROR: Video unavailable\n[info] trailing"
	if got := engineMessage(stderr); got != "Video unavailable" {
		t.Fatalf("expected last ERROR line, got %q", got)
	}
	if got := engineMessage("just text\n\n"); got != "just text" {
		t.Fatalf("expected last non-empty line, got %q", got)
	}
}
