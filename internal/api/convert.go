package api

import (
	"mediaprobe/internal/deps"
	"mediaprobe/internal/media"
	"mediaprobe/internal/media/selection"
)

// audioType is the container label clients expect for audio downloads.
const audioType = "mp3"

// FromInfo converts canonical metadata into an InfoResponse. Only usable formats
// are listed.
func FromInfo(info *media.Info) InfoResponse {
	if info == nil {
		return InfoResponse{Tags: []string{}, AvailableResolutions: []string{}, Formats: []FormatEntry{}}
	}
	usable := selection.UsableFormats(info)
	formats := make([]FormatEntry, 0, len(usable))
	for _, f := range usable {
		formats = append(formats, FromFormat(f))
	}
	return InfoResponse{
		Title:                info.Title,
		Thumbnail:            info.ThumbnailURL,
		Duration:             selection.SummarizeDuration(info.DurationSeconds),
		Tags:                 tagsOrEmpty(info.Tags),
		AvailableResolutions: selection.EnumerateResolutions(info),
		Formats:              formats,
	}
}

// FromFormat converts a single format, mapping absent values to nil.
func FromFormat(f media.Format) FormatEntry {
	return FormatEntry{
		FormatID:   f.FormatID.ToPointer(),
		Ext:        f.Container.ToPointer(),
		Resolution: f.ResolutionLabel().ToPointer(),
		FPS:        f.FrameRate.ToPointer(),
		VCodec:     f.VideoCodec.ToPointer(),
		ACodec:     f.AudioCodec.ToPointer(),
		FileSize:   f.FileSize.ToPointer(),
	}
}

// FromDependencyStatuses converts dependency checks into transport DTOs.
func FromDependencyStatuses(statuses []deps.Status) []DependencyStatus {
	out := make([]DependencyStatus, len(statuses))
	for i, dep := range statuses {
		out[i] = DependencyStatus{
			Name:        dep.Name,
			Command:     dep.Command,
			Description: dep.Description,
			Optional:    dep.Optional,
			Available:   dep.Available,
			Detail:      dep.Detail,
		}
	}
	return out
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
