// Package server exposes api.Service over HTTP.
//
// Routes:
//   - GET  /                         {"status":"running"}
//   - GET  /health                   {"status":"ok"}
//   - POST /api/video/info
//   - POST /api/video/download
//   - POST /api/audio/download
//   - POST /api/video/thumbnail
//   - POST /api/video/call-preview
//
// Every failure from the service is answered with 400 and {"error": token}.
// Malformed bodies and URLs are rejected with invalid_request before any
// extraction starts. Each request gets a correlation id (X-Request-ID) that is
// attached to every log line written while serving it.
package server
