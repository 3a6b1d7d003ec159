package media

import (
	"strconv"

	"github.com/samber/mo"
)

// Format is one stream variant reported by the extraction engine.
type Format struct {
	FormatID    mo.Option[string]
	Container   mo.Option[string]
	Height      mo.Option[int]
	FrameRate   mo.Option[float64]
	VideoCodec  mo.Option[string]
	AudioCodec  mo.Option[string]
	BitrateKbps mo.Option[float64]
	// FileSize comes from the exact size when known, else the approximate one.
	FileSize  mo.Option[int64]
	StreamURL string
}

// HasVideo reports whether the format carries a real video track.
func (f Format) HasVideo() bool {
	return f.VideoCodec.IsPresent()
}

// HasAudio reports whether the format carries a real audio track.
func (f Format) HasAudio() bool {
	return f.AudioCodec.IsPresent()
}

// Muxed reports whether the format has a known height plus both tracks.
func (f Format) Muxed() bool {
	return f.Height.IsPresent() && f.HasVideo() && f.HasAudio()
}

// AudioOnly reports whether the format has an audio track and no video track.
func (f Format) AudioOnly() bool {
	return f.HasAudio() && !f.HasVideo()
}

// ResolutionLabel returns "<height>p" or None when the height is unknown.
func (f Format) ResolutionLabel() mo.Option[string] {
	height, ok := f.Height.Get()
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(HeightLabel(height))
}

// HeightLabel renders a pixel height as a resolution label such as "720p".
func HeightLabel(height int) string {
	return strconv.Itoa(height) + "p"
}

// Info is the canonical metadata record for a single media item. It is built
// per request and never cached.
type Info struct {
	Title           string
	ThumbnailURL    string
	DurationSeconds mo.Option[int]
	Tags            []string
	Formats         []Format
}
