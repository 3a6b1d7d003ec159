package extraction

import (
	"errors"
	"testing"

	"mediaprobe/internal/services"
)

const singleJSON = `{
  "title": "Launch recap",
  "thumbnail": "https://img.example/t.jpg",
  "duration": 65.7,
  "tags": ["space", "launch"],
  "formats": [
    {"format_id": "140", "ext": "m4a", "vcodec": "none", "acodec": "mp4a.40.2", "abr": 129.5, "filesize_approx": 1048576, "url": "https://cdn.example/140"},
    {"format_id": "18", "ext": "mp4", "height": 360, "fps": 30, "vcodec": "avc1", "acodec": "mp4a", "filesize": 0, "filesize_approx": 2048, "url": "https://cdn.example/18"},
    {"format_id": "sb0", "ext": "mhtml", "vcodec": "none", "acodec": "none", "url": "https://cdn.example/sb"}
  ]
}`

func TestParseRawSingle(t *testing.T) {
	raw, err := ParseRaw([]byte(singleJSON))
	if err != nil {
		t.Fatalf("ParseRaw: %v", err)
	}
	single, ok := raw.(Single)
	if !ok {
		t.Fatalf("expected Single, got %T", raw)
	}
	if single.Item == nil || len(single.Item.Formats) != 3 {
		t.Fatalf("expected item with 3 formats, got %#v", single.Item)
	}
}

func TestParseRawCollectionKeepsEmptyEntries(t *testing.T) {
	raw, err := ParseRaw([]byte(`{"_type":"playlist","entries":[null,{},{"title":"second"}]}`))
	if err != nil {
		t.Fatalf("ParseRaw: %v", err)
	}
	collection, ok := raw.(Collection)
	if !ok {
		t.Fatalf("expected Collection, got %T", raw)
	}
	if len(collection.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(collection.Entries))
	}
	if collection.Entries[0] != nil || collection.Entries[1] != nil {
		t.Fatal("expected null and {} entries to decode as nil")
	}
}

func TestParseRawEmptyOutput(t *testing.T) {
	for _, input := range []string{"", "  ", "null", "{}"} {
		raw, err := ParseRaw([]byte(input))
		if err != nil {
			t.Fatalf("ParseRaw(%q): %v", input, err)
		}
		if single, ok := raw.(Single); !ok || single.Item != nil {
			t.Fatalf("ParseRaw(%q): expected empty Single, got %#v", input, raw)
		}
	}
}

func TestParseRawRejectsGarbage(t *testing.T) {
	_, err := ParseRaw([]byte("[WARNING] not json"))
	if !errors.Is(err, services.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestNormalizeSingle(t *testing.T) {
	raw, err := ParseRaw([]byte(singleJSON))
	if err != nil {
		t.Fatalf("ParseRaw: %v", err)
	}
	info, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if info.Title != "Launch recap" || info.ThumbnailURL != "https://img.example/t.jpg" {
		t.Fatalf("unexpected title/thumbnail: %q %q", info.Title, info.ThumbnailURL)
	}
	if got := info.DurationSeconds.OrElse(-1); got != 65 {
		t.Fatalf("expected truncated duration 65, got %d", got)
	}
	if len(info.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %v", info.Tags)
	}

	audio := info.Formats[0]
	if audio.HasVideo() || !audio.HasAudio() {
		t.Fatalf("expected audio-only format, got %#v", audio)
	}
	if audio.FileSize.OrElse(0) != 1048576 {
		t.Fatalf("expected approximate filesize fallback, got %v", audio.FileSize.OrElse(0))
	}
	if audio.BitrateKbps.OrElse(0) != 129.5 {
		t.Fatalf("expected bitrate 129.5, got %v", audio.BitrateKbps.OrElse(0))
	}

	muxed := info.Formats[1]
	if !muxed.Muxed() || muxed.Height.OrElse(0) != 360 {
		t.Fatalf("expected muxed 360p format, got %#v", muxed)
	}
	if muxed.FileSize.OrElse(0) != 2048 {
		t.Fatalf("expected zero filesize to fall back to approx, got %d", muxed.FileSize.OrElse(0))
	}

	storyboard := info.Formats[2]
	if storyboard.HasAudio() || storyboard.HasVideo() {
		t.Fatalf("expected \"none\" codecs to normalize to absent, got %#v", storyboard)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	info, err := Normalize(Single{Item: &Item{}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if info.Title != "" || info.ThumbnailURL != "" {
		t.Fatalf("expected empty defaults, got %q %q", info.Title, info.ThumbnailURL)
	}
	if info.Tags == nil || len(info.Tags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", info.Tags)
	}
	if info.DurationSeconds.IsPresent() {
		t.Fatal("expected absent duration")
	}
}

func TestNormalizeCollectionTakesFirstNonEmpty(t *testing.T) {
	first := "first"
	second := "second"
	info, err := Normalize(Collection{Entries: []*Item{nil, {Title: &first}, {Title: &second}}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if info.Title != "first" {
		t.Fatalf("expected first non-empty entry, got %q", info.Title)
	}
}

func TestNormalizeEmptyResultsAreUnsupported(t *testing.T) {
	cases := map[string]Raw{
		"empty single":       Single{},
		"empty collection":   Collection{},
		"all-nil collection": Collection{Entries: []*Item{nil, nil}},
	}
	for name, raw := range cases {
		_, err := Normalize(raw)
		if !errors.Is(err, services.ErrUnsupportedSource) {
			t.Fatalf("%s: expected ErrUnsupportedSource, got %v", name, err)
		}
	}
}
