// Package api defines the wire-format types served by the HTTP layer and the
// Service that produces them.
//
// # Key Types
//
// Service: composes an Extractor (normally extraction.Adapter) with the format
// selection rules. One method per endpoint; every call extracts fresh metadata.
//
// InfoResponse, VideoDownloadResponse, AudioDownloadResponse,
// ThumbnailResponse, CallPreviewResponse: endpoint payloads.
//
// FormatSummary: largest file per resolution plus audio-only formats, used by
// the `formats` command.
//
// # Design Notes
//
// DTOs use snake_case JSON tags to stay compatible with existing clients.
// Absent optional values are rendered as JSON null rather than omitted.
// Errors returned by Service carry services markers; callers turn them into
// tokens with services.ErrorToken.
package api
