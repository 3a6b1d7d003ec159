package extraction

import (
	"context"
	"errors"
	"strings"

	"mediaprobe/internal/services"
)

// Engine error text that means the URL itself is bad or unreachable. Matching is
// best effort; anything unmatched is reported as a generic extraction failure.
var invalidURLPhrases = []string{
	"is not a valid url",
	"invalid url",
	"name or service not known",
	"no such host",
	"failed to resolve",
	"getaddrinfo",
	"connection refused",
	"http error 404",
	"unable to resolve",
}

var unsupportedPhrases = []string{
	"unsupported url",
	"no video formats found",
	"no media found",
}

// Classify tags an engine failure with the matching services marker. stderr is
// the engine's diagnostic output, which usually carries the useful message.
func Classify(err error, stderr string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return services.Wrap(services.ErrTimeout, component, "extract", "engine did not finish in time", err)
	}

	message := engineMessage(stderr)
	haystack := strings.ToLower(message + " " + err.Error())
	switch {
	case containsAny(haystack, unsupportedPhrases):
		return services.Wrap(services.ErrUnsupportedSource, component, "extract", message, err)
	case containsAny(haystack, invalidURLPhrases):
		return services.Wrap(services.ErrInvalidURL, component, "extract", message, err)
	default:
		return services.Wrap(services.ErrExtractionFailed, component, "extract", message, err)
	}
}

// engineMessage returns the last "ERROR:" line from engine output, or the last
// non-empty line when none is tagged.
func engineMessage(stderr string) string {
	var last, lastError string
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		last = line
		if strings.HasPrefix(line, "ERROR:") {
			lastError = strings.TrimSpace(strings.TrimPrefix(line, "ERROR:"))
		}
	}
	if lastError != "" {
		return lastError
	}
	return last
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
