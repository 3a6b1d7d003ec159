package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strings"

	"mediaprobe/internal/api"
	"mediaprobe/internal/services"
)

var resolutionPattern = regexp.MustCompile(`^\d+p$`)

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return services.Wrap(services.ErrValidation, component, "decode", "request body is required", nil)
	}
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return services.Wrap(services.ErrValidation, component, "decode", "request body is required", nil)
		}
		return services.Wrap(services.ErrValidation, component, "decode", "invalid JSON body", err)
	}
	if decoder.More() {
		return services.Wrap(services.ErrValidation, component, "decode", "unexpected data after JSON body", nil)
	}
	return nil
}

// validateResolution applies the default and enforces the "<digits>p" shape.
// Range problems such as "0p" are left to the selector.
func validateResolution(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return api.DefaultResolution, nil
	}
	if !resolutionPattern.MatchString(value) {
		return "", services.Wrap(services.ErrValidation, component, "validate", "resolution must look like 720p", nil)
	}
	return value, nil
}
