package extraction

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"mediaprobe/internal/media"
	"mediaprobe/internal/services"
)

// Normalize converts a raw engine result into a canonical media.Info. For a
// Collection the first non-empty entry is used and the rest are discarded.
func Normalize(raw Raw) (*media.Info, error) {
	var item *Item
	switch v := raw.(type) {
	case Single:
		item = v.Item
	case Collection:
		item, _ = lo.Find(v.Entries, func(entry *Item) bool { return entry != nil })
	}
	if item == nil {
		return nil, services.Wrap(services.ErrUnsupportedSource, component, "normalize", "no media information found", nil)
	}

	info := &media.Info{
		Title:           deref(item.Title),
		ThumbnailURL:    deref(item.Thumbnail),
		DurationSeconds: durationSeconds(item.Duration),
		Tags:            []string{},
		Formats:         make([]media.Format, 0, len(item.Formats)),
	}
	if len(item.Tags) > 0 {
		info.Tags = append(info.Tags, item.Tags...)
	}
	for _, f := range item.Formats {
		info.Formats = append(info.Formats, normalizeFormat(f))
	}
	return info, nil
}

func normalizeFormat(f ItemFormat) media.Format {
	out := media.Format{
		FormatID:    optionalString(f.FormatID),
		Container:   optionalString(f.Ext),
		FrameRate:   mo.PointerToOption(f.FPS),
		VideoCodec:  codec(f.VCodec),
		AudioCodec:  codec(f.ACodec),
		BitrateKbps: mo.PointerToOption(f.ABR),
		FileSize:    fileSize(f.FileSize, f.FileSizeApprox),
		StreamURL:   strings.TrimSpace(f.URL),
	}
	if f.Height != nil && *f.Height > 0 {
		out.Height = mo.Some(int(*f.Height))
	}
	return out
}

// codec treats the engine's "none" marker and empty values as an absent track.
func codec(value *string) mo.Option[string] {
	if value == nil {
		return mo.None[string]()
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" || strings.EqualFold(trimmed, "none") {
		return mo.None[string]()
	}
	return mo.Some(trimmed)
}

func optionalString(value *string) mo.Option[string] {
	if value == nil || strings.TrimSpace(*value) == "" {
		return mo.None[string]()
	}
	return mo.Some(*value)
}

func fileSize(exact, approx *float64) mo.Option[int64] {
	for _, candidate := range []*float64{exact, approx} {
		if candidate != nil && *candidate > 0 {
			return mo.Some(int64(*candidate))
		}
	}
	return mo.None[int64]()
}

func durationSeconds(value *float64) mo.Option[int] {
	if value == nil || *value < 0 {
		return mo.None[int]()
	}
	return mo.Some(int(*value))
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
