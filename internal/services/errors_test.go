package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"mediaprobe/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExtractionFailed, "extraction", "run", "engine failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExtractionFailed) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"extraction", "run", "engine failed", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrExtractionFailed) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %q", err.Error())
	}
}

func TestErrorTokenMapping(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{services.Wrap(services.ErrTimeout, "extraction", "run", "deadline", nil), "timeout"},
		{services.Wrap(services.ErrUnsupportedSource, "extraction", "normalize", "", nil), "unsupported_source"},
		{services.Wrap(services.ErrInvalidURL, "extraction", "run", "", errors.New("dns")), "invalid_url"},
		{services.Wrap(services.ErrExtractionFailed, "extraction", "run", "", nil), "extraction_failed"},
		{fmt.Errorf("select: %w", services.ErrNoVideoFormat), "no_video_format"},
		{services.ErrNoAudioFormat, "no_audio_format"},
		{services.ErrInvalidResolution, "invalid_resolution"},
		{services.Wrap(services.ErrValidation, "http", "decode", "bad json", nil), "invalid_request"},
		{errors.New("unclassified"), "extraction_failed"},
	}
	for _, tt := range tests {
		if got := services.ErrorToken(tt.err); got != tt.want {
			t.Errorf("ErrorToken(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := services.RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request id on bare context")
	}
	if services.WithRequestID(ctx, "") != ctx {
		t.Fatal("expected empty id to leave context untouched")
	}
	ctx = services.WithRequestID(ctx, "abc-123")
	id, ok := services.RequestIDFromContext(ctx)
	if !ok || id != "abc-123" {
		t.Fatalf("unexpected request id %q (ok=%v)", id, ok)
	}
}
