package api

import (
	"net/url"
	"strings"

	"mediaprobe/internal/services"
)

const component = "api"

// ValidateMediaURL requires an absolute http(s) URL with a host and returns it
// trimmed. Anything else is rejected with services.ErrValidation before it can
// reach the engine command line.
func ValidateMediaURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", services.Wrap(services.ErrValidation, component, "validate", "url is required", nil)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, component, "validate", "malformed url", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", services.Wrap(services.ErrValidation, component, "validate", "url scheme must be http or https", nil)
	}
	if parsed.Host == "" || parsed.Hostname() == "" {
		return "", services.Wrap(services.ErrValidation, component, "validate", "url has no host", nil)
	}
	return raw, nil
}
