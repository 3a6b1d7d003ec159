// Package config loads, normalizes, and validates mediaprobe configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// YTDLP_PATH. The Config type centralizes every knob the HTTP server, the
// extraction adapter, and the CLI need.
//
// Always obtain settings through this package so downstream code receives
// sanitized values, canonical log formats, and clear validation errors.
package config
