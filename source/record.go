package source

import "github.com/samber/mo"

// MediaRecord is the normalized metadata of one episode.
//
// Only ID is guaranteed; every optional field is absent independently of the
// others and serializes as null.
type MediaRecord struct {
	// Canonical identifier, channel-programme-episode.
	ID string `json:"id"`
	// Stream variants ordered worst to best. Empty when the manifest could not be expanded.
	Formats []*Format `json:"formats"`

	Title       mo.Option[string] `json:"title"`
	Thumbnail   mo.Option[string] `json:"thumbnail"`
	Series      mo.Option[string] `json:"series"`
	Episode     mo.Option[string] `json:"episode"`
	ReleaseDate mo.Option[string] `json:"release_date"`

	// Page the record was extracted from.
	WebpageURL string `json:"webpage_url"`
	// ID of the source that produced the record.
	Extractor string `json:"extractor"`
}

// String returns the title, or the identifier when the page had no title.
func (r *MediaRecord) String() string {
	return r.Title.OrElse(r.ID)
}

// BestFormat returns the last, highest quality format.
func (r *MediaRecord) BestFormat() mo.Option[*Format] {
	if len(r.Formats) == 0 {
		return mo.None[*Format]()
	}
	return mo.Some(r.Formats[len(r.Formats)-1])
}
