package rthk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/catchup-cli/catchup/log"
	"github.com/catchup-cli/catchup/source"
	"golang.org/x/sync/errgroup"
)

// catalogValue accepts both JSON strings and numbers.
type catalogValue string

func (v *catalogValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = catalogValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("catalog value %s: %w", data, err)
	}
	*v = catalogValue(n.String())
	return nil
}

type catalogItem struct {
	ID catalogValue `json:"id"`
}

type catalogPage struct {
	Content  []catalogItem `json:"content"`
	NextPage catalogValue  `json:"nextPage"`

	number int
}

func (p *catalogPage) last() bool {
	return p.NextPage == lastPage
}

// pages yields catalog pages in ascending order starting at 1.
// It stops after the page marked as last, after MaxCatalogPages pages,
// or after yielding a fetch error.
func (c *Client) pages(ctx context.Context, channel, programme, id string) iter.Seq2[*catalogPage, error] {
	return func(yield func(*catalogPage, error) bool) {
		for n := 1; n <= MaxCatalogPages; n++ {
			page := &catalogPage{number: n}
			if err := c.fetcher.FetchJSON(ctx, c.catalogURL(channel, programme, n), id, page); err != nil {
				yield(nil, fmt.Errorf("catalog page %d: %w", n, err))
				return
			}

			if !yield(page, nil) || page.last() {
				return
			}
		}

		log.Warnf("%s: stopped after %d catalog pages", id, MaxCatalogPages)
	}
}

// Playlist resolves every episode listed in a programme's catalog.
// Records keep catalog order. Any failure aborts the whole playlist.
func (c *Client) Playlist(ctx context.Context, channel, programme string) (*source.Playlist, error) {
	id := PlaylistID(channel, programme)

	var entries []*source.MediaRecord
	for page, err := range c.pages(ctx, channel, programme, id) {
		if err != nil {
			return nil, &ExtractError{ID: id, Err: err}
		}

		log.Debugf("%s: catalog page %d lists %d episodes", id, page.number, len(page.Content))

		records, err := c.resolvePage(ctx, channel, programme, page)
		if err != nil {
			return nil, err
		}
		entries = append(entries, records...)
	}

	playlist := source.NewPlaylist(id, entries)
	playlist.WebpageURL = c.programmeURL(channel, programme)
	playlist.Extractor = PlaylistExtractorID
	return playlist, nil
}

// resolvePage resolves the episodes of one page, in page order.
func (c *Client) resolvePage(ctx context.Context, channel, programme string, page *catalogPage) ([]*source.MediaRecord, error) {
	records := make([]*source.MediaRecord, len(page.Content))

	if c.concurrency <= 1 {
		for i, item := range page.Content {
			record, err := c.Episode(ctx, channel, programme, string(item.ID))
			if err != nil {
				return nil, err
			}
			records[i] = record
		}
		return records, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, item := range page.Content {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			record, err := c.Episode(gctx, channel, programme, string(item.ID))
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
