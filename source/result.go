package source

// ResultType tells which field of a Result is set.
type ResultType string

const (
	TypeVideo    ResultType = "video"
	TypePlaylist ResultType = "playlist"
)

// Result is what a Source hands back: exactly one of Record or Playlist.
type Result struct {
	Type     ResultType   `json:"_type"`
	Record   *MediaRecord `json:"record,omitempty"`
	Playlist *Playlist    `json:"playlist,omitempty"`
}

// VideoResult wraps a single record.
func VideoResult(record *MediaRecord) *Result {
	return &Result{Type: TypeVideo, Record: record}
}

// PlaylistResult wraps a playlist.
func PlaylistResult(playlist *Playlist) *Result {
	return &Result{Type: TypePlaylist, Playlist: playlist}
}

// ID returns the identifier of whichever value the result holds.
func (r *Result) ID() string {
	switch {
	case r.Record != nil:
		return r.Record.ID
	case r.Playlist != nil:
		return r.Playlist.ID
	default:
		return ""
	}
}

// Records flattens the result into its records, in order.
func (r *Result) Records() []*MediaRecord {
	switch {
	case r.Record != nil:
		return []*MediaRecord{r.Record}
	case r.Playlist != nil:
		return r.Playlist.Entries
	default:
		return nil
	}
}
