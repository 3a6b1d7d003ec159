// Package main hosts the mediaprobe CLI entrypoint and command graph.
//
// `serve` runs the HTTP API. `info`, `resolve` and `formats` run the same
// extraction and selection path directly from the terminal, which is handy for
// checking what a URL resolves to without a client. `check` and `config`
// cover environment and configuration scaffolding.
//
// Keep this package lean: behaviour lives in the internal packages and is only
// surfaced here.
package main
