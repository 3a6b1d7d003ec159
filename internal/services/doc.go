// Package services defines shared utilities consumed by the extraction adapter,
// the format selector, and the HTTP layer.
//
// Key responsibilities:
//   - Context helpers that stamp correlation identifiers for logging.
//   - Structured error markers plus the Wrap helper that tag failures so the
//     HTTP boundary can translate them into short client-facing tokens.
//
// Use these helpers when wiring new request paths so error handling and
// observability stay uniform across the service.
package services
