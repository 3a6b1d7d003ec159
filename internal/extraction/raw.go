package extraction

import (
	"bytes"
	"encoding/json"
	"fmt"

	"mediaprobe/internal/services"
)

// Raw is the engine output before normalization. It is either a Single or a
// Collection.
type Raw interface {
	isRaw()
}

// Single is a result describing one media item. A nil Item means the engine
// returned an empty record.
type Single struct {
	Item *Item
}

// Collection is a playlist-like result. Null or empty entries are kept as nil so
// ordering is preserved.
type Collection struct {
	Entries []*Item
}

func (Single) isRaw()     {}
func (Collection) isRaw() {}

// Item mirrors the subset of engine fields mediaprobe reads. Numeric fields are
// decoded as floats because the engine emits both integer and fractional forms.
type Item struct {
	Title     *string      `json:"title"`
	Thumbnail *string      `json:"thumbnail"`
	Duration  *float64     `json:"duration"`
	Tags      []string     `json:"tags"`
	Formats   []ItemFormat `json:"formats"`
}

// ItemFormat is one entry of an item's formats list.
type ItemFormat struct {
	FormatID       *string  `json:"format_id"`
	Ext            *string  `json:"ext"`
	Height         *float64 `json:"height"`
	FPS            *float64 `json:"fps"`
	VCodec         *string  `json:"vcodec"`
	ACodec         *string  `json:"acodec"`
	ABR            *float64 `json:"abr"`
	FileSize       *float64 `json:"filesize"`
	FileSizeApprox *float64 `json:"filesize_approx"`
	URL            string   `json:"url"`
}

// ParseRaw decodes engine JSON output. A top-level object with a non-null
// "entries" key is a Collection; anything else is a Single.
func ParseRaw(data []byte) (Raw, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Single{}, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, services.Wrap(services.ErrExtractionFailed, component, "parse", "decode engine output", err)
	}

	if entries, ok := top["entries"]; ok && !isNull(entries) {
		var rawEntries []json.RawMessage
		if err := json.Unmarshal(entries, &rawEntries); err != nil {
			return nil, services.Wrap(services.ErrExtractionFailed, component, "parse", "decode entries", err)
		}
		collection := Collection{Entries: make([]*Item, 0, len(rawEntries))}
		for idx, entry := range rawEntries {
			item, err := decodeItem(entry)
			if err != nil {
				return nil, services.Wrap(services.ErrExtractionFailed, component, "parse", fmt.Sprintf("decode entry %d", idx), err)
			}
			collection.Entries = append(collection.Entries, item)
		}
		return collection, nil
	}

	if len(top) == 0 {
		return Single{}, nil
	}
	item, err := decodeItem(data)
	if err != nil {
		return nil, services.Wrap(services.ErrExtractionFailed, component, "parse", "decode item", err)
	}
	return Single{Item: item}, nil
}

func decodeItem(data json.RawMessage) (*Item, error) {
	if isNull(data) {
		return nil, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
