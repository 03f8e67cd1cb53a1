package source

// Playlist is the ordered collection of records of one programme.
type Playlist struct {
	// Identifier, channel-programme.
	ID string `json:"id"`
	// Records in catalog order.
	Entries []*MediaRecord `json:"entries"`

	WebpageURL string `json:"webpage_url"`
	Extractor  string `json:"extractor"`
}

// NewPlaylist wraps entries under id. A nil slice becomes an empty one.
func NewPlaylist(id string, entries []*MediaRecord) *Playlist {
	if entries == nil {
		entries = []*MediaRecord{}
	}
	return &Playlist{ID: id, Entries: entries}
}

// String returns the playlist identifier.
func (p *Playlist) String() string {
	return p.ID
}
