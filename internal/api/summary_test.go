package api

import (
	"testing"

	"github.com/samber/mo"

	"mediaprobe/internal/media"
)

func sized(id string, height int, size int64, audio bool) media.Format {
	f := media.Format{
		FormatID:   mo.Some(id),
		Container:  mo.Some("mp4"),
		Height:     mo.Some(height),
		VideoCodec: mo.Some("avc1"),
		FileSize:   mo.Some(size),
		StreamURL:  "https://cdn.example/" + id,
	}
	if audio {
		f.AudioCodec = mo.Some("mp4a")
	}
	return f
}

func TestSummarizeFormatsKeepsLargestPerResolution(t *testing.T) {
	info := &media.Info{Formats: []media.Format{
		sized("360-small", 360, 1*bytesPerMiB, true),
		sized("720", 720, 10*bytesPerMiB, false),
		sized("360-large", 360, 2*bytesPerMiB, false),
		{FormatID: mo.Some("unsized"), Height: mo.Some(1080), VideoCodec: mo.Some("vp9"), StreamURL: "https://cdn.example/u"},
		{
			FormatID:   mo.Some("251"),
			Container:  mo.Some("webm"),
			AudioCodec: mo.Some("opus"),
			FileSize:   mo.Some(int64(1536 * 1024)),
			StreamURL:  "https://cdn.example/251",
		},
	}}

	summary := SummarizeFormats(info)
	if len(summary.Video) != 2 {
		t.Fatalf("expected 2 resolutions, got %+v", summary.Video)
	}
	if summary.Video[0].Resolution != "720p" || summary.Video[1].Resolution != "360p" {
		t.Fatalf("expected tallest first, got %s, %s", summary.Video[0].Resolution, summary.Video[1].Resolution)
	}
	if summary.Video[1].URL != "https://cdn.example/360-large" || summary.Video[1].HasAudio {
		t.Fatalf("expected largest 360p file without audio, got %+v", summary.Video[1])
	}
	if summary.Video[0].SizeMiB != 10 {
		t.Fatalf("expected 10 MiB, got %v", summary.Video[0].SizeMiB)
	}

	if len(summary.Audio) != 1 || summary.Audio[0].Ext != "webm" || summary.Audio[0].SizeMiB != 1.5 {
		t.Fatalf("unexpected audio summary: %+v", summary.Audio)
	}
}

func TestSummarizeFormatsNil(t *testing.T) {
	summary := SummarizeFormats(nil)
	if summary.Video == nil || summary.Audio == nil {
		t.Fatal("expected empty non-nil slices")
	}
}
