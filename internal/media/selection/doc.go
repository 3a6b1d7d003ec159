// Package selection picks stream formats out of a canonical media.Info.
//
// Everything here is pure and deterministic: no I/O, no logging, no shared
// state. Selection rules:
//   - A format is usable when it has a stream URL and either a known height
//     or a real audio track.
//   - Video: best muxed format at or below the requested height; when none
//     fits, the best muxed format overall.
//   - Audio: highest-bitrate audio-only format; when none exists, the
//     highest-bitrate format that carries audio at all.
//
// Ties always resolve to the earliest format in engine order.
//
// Primary entry points:
//   - SelectVideoFormat, SelectAudioFormat
//   - ResolutionHeight, EnumerateResolutions, SummarizeDuration
package selection
