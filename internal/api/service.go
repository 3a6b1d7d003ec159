package api

import (
	"context"

	"mediaprobe/internal/media"
	"mediaprobe/internal/media/selection"
)

// DefaultResolution is used when a video download request names no resolution.
const DefaultResolution = "720p"

// Extractor produces canonical metadata for a URL.
type Extractor interface {
	Extract(ctx context.Context, url string) (*media.Info, error)
}

// Service answers endpoint requests. It holds no per-request state and is safe
// for concurrent use.
type Service struct {
	extractor Extractor
}

// NewService constructs a Service around the provided extractor.
func NewService(extractor Extractor) *Service {
	if extractor == nil {
		return nil
	}
	return &Service{extractor: extractor}
}

// Info returns the metadata summary for url.
func (s *Service) Info(ctx context.Context, url string) (InfoResponse, error) {
	info, err := s.extractor.Extract(ctx, url)
	if err != nil {
		return InfoResponse{}, err
	}
	return FromInfo(info), nil
}

// VideoDownload resolves the stream URL of the best muxed format at or below
// resolution. The resolution is validated before any extraction happens.
func (s *Service) VideoDownload(ctx context.Context, url, resolution string) (VideoDownloadResponse, error) {
	if resolution == "" {
		resolution = DefaultResolution
	}
	target, err := selection.ResolutionHeight(resolution)
	if err != nil {
		return VideoDownloadResponse{}, err
	}
	info, err := s.extractor.Extract(ctx, url)
	if err != nil {
		return VideoDownloadResponse{}, err
	}
	format, err := selection.SelectVideoFormat(info, target)
	if err != nil {
		return VideoDownloadResponse{}, err
	}
	return VideoDownloadResponse{
		DownloadURL: format.StreamURL,
		Resolution:  format.ResolutionLabel().OrElse(resolution),
	}, nil
}

// AudioDownload resolves the stream URL of the best audio format.
func (s *Service) AudioDownload(ctx context.Context, url string) (AudioDownloadResponse, error) {
	info, err := s.extractor.Extract(ctx, url)
	if err != nil {
		return AudioDownloadResponse{}, err
	}
	format, err := selection.SelectAudioFormat(info)
	if err != nil {
		return AudioDownloadResponse{}, err
	}
	return AudioDownloadResponse{DownloadURL: format.StreamURL, Type: audioType}, nil
}

// Thumbnail returns the thumbnail URL for url.
func (s *Service) Thumbnail(ctx context.Context, url string) (ThumbnailResponse, error) {
	info, err := s.extractor.Extract(ctx, url)
	if err != nil {
		return ThumbnailResponse{}, err
	}
	return ThumbnailResponse{Thumbnail: info.ThumbnailURL}, nil
}

// CallPreview returns title, thumbnail and tags for url.
func (s *Service) CallPreview(ctx context.Context, url string) (CallPreviewResponse, error) {
	info, err := s.extractor.Extract(ctx, url)
	if err != nil {
		return CallPreviewResponse{}, err
	}
	return CallPreviewResponse{
		Title:     info.Title,
		Thumbnail: info.ThumbnailURL,
		Tags:      tagsOrEmpty(info.Tags),
	}, nil
}

// Formats returns the per-resolution and audio-only size summary for url.
func (s *Service) Formats(ctx context.Context, url string) (FormatSummary, error) {
	info, err := s.extractor.Extract(ctx, url)
	if err != nil {
		return FormatSummary{}, err
	}
	return SummarizeFormats(info), nil
}
