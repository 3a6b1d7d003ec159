package selection

import (
	"fmt"

	"github.com/samber/lo"

	"mediaprobe/internal/media"
	"mediaprobe/internal/services"
)

const component = "selection"

// UsableFormats returns the formats that can be handed to a client: a non-empty
// stream URL plus either a known height or a real audio track. Engine order is
// preserved.
func UsableFormats(info *media.Info) []media.Format {
	if info == nil {
		return nil
	}
	return lo.Filter(info.Formats, func(f media.Format, _ int) bool {
		if f.StreamURL == "" {
			return false
		}
		return f.Height.IsPresent() || f.HasAudio()
	})
}

// SelectVideoFormat returns the tallest muxed format whose height does not exceed
// targetHeight. When every muxed format is taller than the target, the tallest
// muxed format is returned instead.
func SelectVideoFormat(info *media.Info, targetHeight int) (media.Format, error) {
	muxed := lo.Filter(UsableFormats(info), func(f media.Format, _ int) bool {
		return f.Muxed()
	})
	if len(muxed) == 0 {
		return media.Format{}, services.Wrap(services.ErrNoVideoFormat, component, "video", "no muxed format with a stream url", nil)
	}

	eligible := lo.Filter(muxed, func(f media.Format, _ int) bool {
		return height(f) <= targetHeight
	})
	pool := eligible
	if len(pool) == 0 {
		pool = muxed
	}
	return lo.MaxBy(pool, func(a, b media.Format) bool {
		return height(a) > height(b)
	}), nil
}

// SelectAudioFormat returns the highest-bitrate audio-only format, falling back
// to the highest-bitrate format carrying any audio track.
func SelectAudioFormat(info *media.Info) (media.Format, error) {
	usable := UsableFormats(info)

	audioOnly := lo.Filter(usable, func(f media.Format, _ int) bool {
		return f.AudioOnly()
	})
	if len(audioOnly) > 0 {
		return highestBitrate(audioOnly), nil
	}

	withAudio := lo.Filter(usable, func(f media.Format, _ int) bool {
		return f.HasAudio()
	})
	if len(withAudio) == 0 {
		return media.Format{}, services.Wrap(services.ErrNoAudioFormat, component, "audio",
			fmt.Sprintf("none of %d usable formats carries audio", len(usable)), nil)
	}
	return highestBitrate(withAudio), nil
}

func highestBitrate(formats []media.Format) media.Format {
	return lo.MaxBy(formats, func(a, b media.Format) bool {
		return a.BitrateKbps.OrElse(0) > b.BitrateKbps.OrElse(0)
	})
}

func height(f media.Format) int {
	return f.Height.OrElse(0)
}
