package api

// StatusResponse is returned by the root and health endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// URLRequest is the body accepted by endpoints that only need a media URL.
type URLRequest struct {
	URL string `json:"url"`
}

// VideoDownloadRequest selects a muxed stream at or below Resolution.
type VideoDownloadRequest struct {
	URL        string `json:"url"`
	Resolution string `json:"resolution"`
}

// InfoResponse describes a media item.
type InfoResponse struct {
	Title                string        `json:"title"`
	Thumbnail            string        `json:"thumbnail"`
	Duration             string        `json:"duration"`
	Tags                 []string      `json:"tags"`
	AvailableResolutions []string      `json:"available_resolutions"`
	Formats              []FormatEntry `json:"formats"`
}

// FormatEntry is one usable format in an InfoResponse.
type FormatEntry struct {
	FormatID   *string  `json:"format_id"`
	Ext        *string  `json:"ext"`
	Resolution *string  `json:"resolution"`
	FPS        *float64 `json:"fps"`
	VCodec     *string  `json:"vcodec"`
	ACodec     *string  `json:"acodec"`
	FileSize   *int64   `json:"filesize"`
}

// VideoDownloadResponse carries the direct stream URL of the chosen format.
type VideoDownloadResponse struct {
	DownloadURL string `json:"download_url"`
	Resolution  string `json:"resolution"`
}

// AudioDownloadResponse carries the direct stream URL of the chosen audio format.
type AudioDownloadResponse struct {
	DownloadURL string `json:"download_url"`
	Type        string `json:"type"`
}

// ThumbnailResponse carries the item thumbnail URL.
type ThumbnailResponse struct {
	Thumbnail string `json:"thumbnail"`
}

// CallPreviewResponse is the compact preview used by chat and call clients.
type CallPreviewResponse struct {
	Title     string   `json:"title"`
	Thumbnail string   `json:"thumbnail"`
	Tags      []string `json:"tags"`
}

// DependencyStatus captures availability of an external dependency.
type DependencyStatus struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Detail      string `json:"detail,omitempty"`
}
