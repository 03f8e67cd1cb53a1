package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/catchup-cli/catchup/source"
	"github.com/catchup-cli/catchup/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// EpisodesFilter narrows down the records of a playlist.
type EpisodesFilter func([]*source.MediaRecord) ([]*source.MediaRecord, error)

type Options struct {
	Out            io.Writer
	Source         source.Source
	URL            string
	Json           bool
	Pretty         bool
	EpisodesFilter mo.Option[EpisodesFilter]
}

// ParseEpisodesFilter parses a filter description.
// Format: "first", "last", "all", "5", "1-5", "@text@".
// Indexes are zero based.
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	switch description {
	case "first":
		return func(records []*source.MediaRecord) ([]*source.MediaRecord, error) {
			if len(records) == 0 {
				return records, nil
			}
			return records[:1], nil
		}, nil
	case "last":
		return func(records []*source.MediaRecord) ([]*source.MediaRecord, error) {
			if len(records) == 0 {
				return records, nil
			}
			return records[len(records)-1:], nil
		}, nil
	case "all":
		return func(records []*source.MediaRecord) ([]*source.MediaRecord, error) {
			return records, nil
		}, nil
	}

	// Range: "1-5"
	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.ParseUint(from, 10, 16)
		end, err2 := strconv.ParseUint(to, 10, 16)
		if err1 == nil && err2 == nil {
			return func(records []*source.MediaRecord) ([]*source.MediaRecord, error) {
				lower := util.Min(start, uint64(len(records)))
				upper := util.Min(end+1, uint64(len(records)))
				if lower > upper {
					return []*source.MediaRecord{}, nil
				}
				return records[lower:upper], nil
			}, nil
		}
	}

	// Substring: "@text@"
	if len(description) >= 2 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(records []*source.MediaRecord) ([]*source.MediaRecord, error) {
			return lo.Filter(records, func(r *source.MediaRecord, _ int) bool {
				return strings.Contains(strings.ToLower(r.String()), sub) ||
					strings.Contains(strings.ToLower(r.Episode.OrEmpty()), sub)
			}), nil
		}, nil
	}

	// Single index: "5"
	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(records []*source.MediaRecord) ([]*source.MediaRecord, error) {
			if uint64(len(records)) <= idx {
				return []*source.MediaRecord{}, nil
			}
			return []*source.MediaRecord{records[idx]}, nil
		}, nil
	}

	return nil, fmt.Errorf("invalid episode filter: %s", description)
}
