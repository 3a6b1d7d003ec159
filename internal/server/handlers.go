package server

import (
	"encoding/json"
	"net/http"

	"mediaprobe/internal/api"
	"mediaprobe/internal/logging"
	"mediaprobe/internal/services"
)

const (
	tokenNotFound         = "not_found"
	tokenMethodNotAllowed = "method_not_allowed"
	tokenUnauthorized     = "unauthorized"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.writeError(w, http.StatusNotFound, tokenNotFound)
		return
	}
	if !allowMethod(w, r, http.MethodGet) {
		s.writeError(w, http.StatusMethodNotAllowed, tokenMethodNotAllowed)
		return
	}
	s.writeJSON(w, http.StatusOK, api.StatusResponse{Status: "running"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		s.writeError(w, http.StatusMethodNotAllowed, tokenMethodNotAllowed)
		return
	}
	s.writeJSON(w, http.StatusOK, api.StatusResponse{Status: "ok"})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeURLRequest(w, r)
	if !ok {
		return
	}
	resp, err := s.svc.Info(r.Context(), req.URL)
	s.respond(w, r, resp, err)
}

func (s *Server) handleVideoDownload(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		s.writeError(w, http.StatusMethodNotAllowed, tokenMethodNotAllowed)
		return
	}
	var req api.VideoDownloadRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	url, err := api.ValidateMediaURL(req.URL)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resolution, err := validateResolution(req.Resolution)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp, err := s.svc.VideoDownload(r.Context(), url, resolution)
	s.respond(w, r, resp, err)
}

func (s *Server) handleAudioDownload(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeURLRequest(w, r)
	if !ok {
		return
	}
	resp, err := s.svc.AudioDownload(r.Context(), req.URL)
	s.respond(w, r, resp, err)
}

func (s *Server) handleThumbnail(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeURLRequest(w, r)
	if !ok {
		return
	}
	resp, err := s.svc.Thumbnail(r.Context(), req.URL)
	s.respond(w, r, resp, err)
}

func (s *Server) handleCallPreview(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeURLRequest(w, r)
	if !ok {
		return
	}
	resp, err := s.svc.CallPreview(r.Context(), req.URL)
	s.respond(w, r, resp, err)
}

// decodeURLRequest handles method, body and URL validation for endpoints that
// take only a URL. It writes the error response itself and reports false on
// failure.
func (s *Server) decodeURLRequest(w http.ResponseWriter, r *http.Request) (api.URLRequest, bool) {
	var req api.URLRequest
	if !allowMethod(w, r, http.MethodPost) {
		s.writeError(w, http.StatusMethodNotAllowed, tokenMethodNotAllowed)
		return req, false
	}
	if err := s.decodeBody(w, r, &req); err != nil {
		s.fail(w, r, err)
		return req, false
	}
	url, err := api.ValidateMediaURL(req.URL)
	if err != nil {
		s.fail(w, r, err)
		return req, false
	}
	req.URL = url
	return req, true
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, payload any, err error) {
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, payload)
}

// fail answers 400 with the error token. Every service failure is a per-request
// client error.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	token := services.ErrorToken(err)
	logging.WithContext(r.Context(), s.logger).Warn("request failed",
		logging.String("path", r.URL.Path),
		logging.String(logging.FieldErrorToken, token),
		logging.Error(err),
	)
	s.writeError(w, http.StatusBadRequest, token)
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	return false
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, token string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: token})
}
