package source

// Format is one concrete rendition referenced by a streaming manifest.
type Format struct {
	// Format identifier, unique within a record (e.g. "hls-2176").
	FormatID string `json:"format_id"`
	// Direct URL of the variant playlist.
	URL string `json:"url"`
	// Manifest the variant was listed in.
	ManifestURL string `json:"manifest_url"`
	// Container hint (e.g. "mp4").
	Ext string `json:"ext"`
	// Download protocol (e.g. "m3u8_native").
	Protocol string `json:"protocol"`
	// Total bitrate in kbit/s.
	TBR float64 `json:"tbr,omitempty"`

	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	FPS    float64 `json:"fps,omitempty"`

	// Codec names, "none" when the stream is known not to carry that track.
	VCodec string `json:"vcodec,omitempty"`
	ACodec string `json:"acodec,omitempty"`

	Language string `json:"language,omitempty"`
}

// String returns the format identifier, or the URL when it has none.
func (f *Format) String() string {
	if f.FormatID != "" {
		return f.FormatID
	}
	return f.URL
}

// AudioOnly reports whether the format carries no video track.
func (f *Format) AudioOnly() bool {
	return f.VCodec == "none"
}
