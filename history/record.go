package history

import (
	"fmt"
	"time"

	"github.com/catchup-cli/catchup/source"
)

// SavedRecord is one extracted episode kept in the history file.
type SavedRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Series      string    `json:"series"`
	Episode     string    `json:"episode"`
	ReleaseDate string    `json:"release_date"`
	URL         string    `json:"url"`
	Extractor   string    `json:"extractor"`
	ExtractedAt time.Time `json:"extracted_at"`
	// Times is how often the episode was extracted.
	Times int `json:"times"`
}

func (s *SavedRecord) encode() string {
	return fmt.Sprintf("%s (%s)", s.ID, s.Extractor)
}

func (s *SavedRecord) String() string {
	if s.Series != "" && s.Episode != "" {
		return fmt.Sprintf("%s : %s", s.Series, s.Episode)
	}
	if s.Title != "" {
		return s.Title
	}
	return s.ID
}

func newSavedRecord(record *source.MediaRecord, at time.Time) *SavedRecord {
	return &SavedRecord{
		ID:          record.ID,
		Title:       record.Title.OrEmpty(),
		Series:      record.Series.OrEmpty(),
		Episode:     record.Episode.OrEmpty(),
		ReleaseDate: record.ReleaseDate.OrEmpty(),
		URL:         record.WebpageURL,
		Extractor:   record.Extractor,
		ExtractedAt: at,
		Times:       1,
	}
}
