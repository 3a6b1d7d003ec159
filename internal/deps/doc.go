// Package deps reports whether the external binaries behind the extraction
// engine are installed. The `check` command and server startup both use it.
package deps
