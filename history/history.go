// Package history keeps a local record of extracted episodes.
package history

import (
	"slices"
	"strings"
	"time"

	"github.com/catchup-cli/catchup/filesystem"
	"github.com/catchup-cli/catchup/source"
	"github.com/catchup-cli/catchup/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
)

var cacher = gache.New[map[string]*SavedRecord](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved record keyed by record and extractor id.
func Get() (map[string]*SavedRecord, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedRecord), nil
	}
	return cached, nil
}

// List returns saved records, most recently extracted first.
func List() ([]*SavedRecord, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := lo.Values(saved)
	slices.SortFunc(records, func(a, b *SavedRecord) int {
		if c := b.ExtractedAt.Compare(a.ExtractedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return records, nil
}

// Save adds records to the history. Records already saved get their
// extraction time refreshed and their counter bumped.
func Save(records ...*source.MediaRecord) error {
	if len(records) == 0 {
		return nil
	}

	saved, err := Get()
	if err != nil {
		return err
	}

	now := time.Now()
	for _, record := range records {
		entry := newSavedRecord(record, now)
		if existing, ok := saved[entry.encode()]; ok {
			entry.Times = existing.Times + 1
		}
		saved[entry.encode()] = entry
	}

	return cacher.Set(saved)
}

// Remove deletes a record from the history.
func Remove(record *SavedRecord) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, record.encode())
	return cacher.Set(saved)
}
