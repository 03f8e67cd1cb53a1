package rthk

import (
	"context"
	"fmt"
	"regexp"

	"github.com/catchup-cli/catchup/hls"
	"github.com/catchup-cli/catchup/log"
	"github.com/catchup-cli/catchup/scrape"
	"github.com/catchup-cli/catchup/source"
)

var manifestPattern = regexp.MustCompile(`"(https?://.+?/master\.m3u8)"`)

// Episode resolves one episode page into a record.
//
// Only an unreachable page, a page without a manifest URL or a malformed
// date fail; a manifest that cannot be expanded leaves the record without formats.
func (c *Client) Episode(ctx context.Context, channel, programme, episode string) (*source.MediaRecord, error) {
	id := EpisodeID(channel, programme, episode)
	pageURL := c.episodeURL(channel, programme, episode)

	body, err := c.fetcher.FetchText(ctx, pageURL, id)
	if err != nil {
		return nil, &ExtractError{ID: id, Err: err}
	}

	page, err := scrape.NewPage(pageURL, body)
	if err != nil {
		return nil, &ExtractError{ID: id, Err: err}
	}

	manifestURL, err := page.Search(manifestPattern, "m3u8 url")
	if err != nil {
		return nil, &ExtractError{ID: id, Err: fmt.Errorf("%w: %w", ErrManifestNotFound, err)}
	}

	formats := c.manifests.Formats(ctx, manifestURL, hls.Options{
		ID:       id,
		Ext:      manifestExt,
		FormatID: manifestFormatID,
	})
	if formats == nil {
		formats = []*source.Format{}
	}

	releaseDate, err := ParseDate(page.Meta("episodeDate"))
	if err != nil {
		return nil, &ExtractError{ID: id, Err: err}
	}

	record := &source.MediaRecord{
		ID:          id,
		Formats:     formats,
		Title:       page.OpenGraph("title"),
		Thumbnail:   page.OpenGraph("image"),
		Series:      page.Meta("programmeName"),
		Episode:     page.Meta("episodeName"),
		ReleaseDate: releaseDate,
		WebpageURL:  pageURL,
		Extractor:   EpisodeExtractorID,
	}

	log.Debugf("%s: resolved %q with %d formats", id, record.String(), len(formats))
	return record, nil
}
