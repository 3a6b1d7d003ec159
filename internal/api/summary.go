package api

import (
	"math"
	"slices"

	"mediaprobe/internal/media"
	"mediaprobe/internal/media/selection"
)

const bytesPerMiB = 1024 * 1024

// FormatSummary lists the largest file per resolution and all audio-only
// formats. Formats without a known size are left out.
type FormatSummary struct {
	Title     string          `json:"title"`
	Thumbnail string          `json:"thumbnail"`
	Video     []VideoSizeInfo `json:"video"`
	Audio     []AudioSizeInfo `json:"audio"`
}

// VideoSizeInfo is the largest format at one resolution.
type VideoSizeInfo struct {
	Resolution string  `json:"resolution"`
	Height     int     `json:"-"`
	Ext        string  `json:"ext"`
	SizeMiB    float64 `json:"size"`
	SizeBytes  int64   `json:"size_bytes"`
	URL        string  `json:"url"`
	HasAudio   bool    `json:"has_audio"`
}

// AudioSizeInfo is one audio-only format.
type AudioSizeInfo struct {
	Ext       string  `json:"ext"`
	SizeMiB   float64 `json:"size"`
	SizeBytes int64   `json:"size_bytes"`
	URL       string  `json:"url"`
}

// SummarizeFormats groups sized formats by resolution, keeping the largest
// file for each, sorted tallest first. Audio-only formats keep engine order.
func SummarizeFormats(info *media.Info) FormatSummary {
	summary := FormatSummary{Video: []VideoSizeInfo{}, Audio: []AudioSizeInfo{}}
	if info == nil {
		return summary
	}
	summary.Title = info.Title
	summary.Thumbnail = info.ThumbnailURL

	byHeight := make(map[int]VideoSizeInfo)
	for _, f := range selection.UsableFormats(info) {
		size, ok := f.FileSize.Get()
		if !ok || size <= 0 {
			continue
		}
		if f.AudioOnly() {
			summary.Audio = append(summary.Audio, AudioSizeInfo{
				Ext:       f.Container.OrEmpty(),
				SizeMiB:   toMiB(size),
				SizeBytes: size,
				URL:       f.StreamURL,
			})
			continue
		}
		height, ok := f.Height.Get()
		if !ok {
			continue
		}
		if current, seen := byHeight[height]; seen && size <= current.SizeBytes {
			continue
		}
		byHeight[height] = VideoSizeInfo{
			Resolution: media.HeightLabel(height),
			Height:     height,
			Ext:        f.Container.OrEmpty(),
			SizeMiB:    toMiB(size),
			SizeBytes:  size,
			URL:        f.StreamURL,
			HasAudio:   f.HasAudio(),
		}
	}

	for _, entry := range byHeight {
		summary.Video = append(summary.Video, entry)
	}
	slices.SortFunc(summary.Video, func(a, b VideoSizeInfo) int {
		return b.Height - a.Height
	})
	return summary
}

func toMiB(size int64) float64 {
	return math.Round(float64(size)/bytesPerMiB*100) / 100
}
