package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Extraction adapter failures.
	ErrTimeout           = errors.New("timeout")
	ErrUnsupportedSource = errors.New("unsupported source")
	ErrInvalidURL        = errors.New("invalid url")
	ErrExtractionFailed  = errors.New("extraction failed")

	// Format selector failures.
	ErrNoVideoFormat     = errors.New("no video format")
	ErrNoAudioFormat     = errors.New("no audio format")
	ErrInvalidResolution = errors.New("invalid resolution")

	// ErrValidation marks malformed client input rejected before reaching the core.
	ErrValidation = errors.New("validation error")
)

// Error tokens returned to HTTP clients.
const (
	TokenTimeout           = "timeout"
	TokenUnsupportedSource = "unsupported_source"
	TokenInvalidURL        = "invalid_url"
	TokenExtractionFailed  = "extraction_failed"
	TokenNoVideoFormat     = "no_video_format"
	TokenNoAudioFormat     = "no_audio_format"
	TokenInvalidResolution = "invalid_resolution"
	TokenInvalidRequest    = "invalid_request"
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExtractionFailed
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ErrorToken maps an error to the short machine-readable token sent to clients.
// Errors without a recognised marker are reported as extraction failures.
func ErrorToken(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return TokenInvalidRequest
	case errors.Is(err, ErrTimeout):
		return TokenTimeout
	case errors.Is(err, ErrUnsupportedSource):
		return TokenUnsupportedSource
	case errors.Is(err, ErrInvalidURL):
		return TokenInvalidURL
	case errors.Is(err, ErrNoVideoFormat):
		return TokenNoVideoFormat
	case errors.Is(err, ErrNoAudioFormat):
		return TokenNoAudioFormat
	case errors.Is(err, ErrInvalidResolution):
		return TokenInvalidResolution
	default:
		return TokenExtractionFailed
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
