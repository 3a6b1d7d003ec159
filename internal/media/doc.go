// Package media defines the canonical, engine-independent media records used by
// every downstream component.
//
// Optional engine fields are carried as mo.Option values, so "absent" is always
// explicit: a codec is None when the stream has no such track, never a
// sentinel string.
package media
