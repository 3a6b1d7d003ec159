// Package extraction wraps the external extraction engine (yt-dlp) and turns its
// output into canonical media.Info records.
//
// The flow for one URL is:
//   - Adapter.Extract bounds the call with the configured timeout and runs the
//     Engine on a dispatch.Pool slot.
//   - ParseRaw decodes the engine JSON into a Raw variant: Single for one item,
//     Collection for playlist-like results.
//   - Normalize picks the item (first non-empty entry for collections) and
//     copies known fields, turning "none" codecs into absent values.
//   - Classify maps engine failures onto the services error markers.
//
// Tests substitute Engine with fakes; nothing here touches the network directly.
package extraction
