// Package rthk resolves RTHK catch-up TV episodes and programme catalogs
// into normalized media records.
package rthk

import (
	"context"
	"fmt"
	"strings"

	"github.com/catchup-cli/catchup/hls"
	"github.com/catchup-cli/catchup/source"
)

const (
	// DefaultBaseURL is where pages and catalog listings live.
	DefaultBaseURL = "https://www.rthk.hk"

	// MaxCatalogPages bounds how many catalog pages one playlist may request.
	MaxCatalogPages = 31

	// lastPage is the nextPage value of the final catalog page.
	lastPage = "-1"

	manifestExt      = "mp4"
	manifestFormatID = "hls"
)

// Fetcher downloads pages and catalog listings.
// The id passed along labels the request in logs.
type Fetcher interface {
	FetchText(ctx context.Context, url, id string) (string, error)
	FetchJSON(ctx context.Context, url, id string, v any) error
}

// ManifestExpander lists the formats of an HLS manifest.
// It never fails; an unusable manifest yields no formats.
type ManifestExpander interface {
	Formats(ctx context.Context, manifestURL string, opts hls.Options) []*source.Format
}

// Options configure a Client.
type Options struct {
	// BaseURL replaces DefaultBaseURL, mostly for tests.
	BaseURL string
	// Concurrency is how many episodes of one catalog page are resolved at once.
	// Values below 2 resolve them one after another.
	Concurrency int
}

// Client resolves episodes and playlists.
type Client struct {
	fetcher     Fetcher
	manifests   ManifestExpander
	baseURL     string
	concurrency int
}

// New returns a Client.
func New(fetcher Fetcher, manifests ManifestExpander, opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		fetcher:     fetcher,
		manifests:   manifests,
		baseURL:     baseURL,
		concurrency: max(opts.Concurrency, 1),
	}
}

// EpisodeID is the canonical identifier of an episode.
func EpisodeID(channel, programme, episode string) string {
	return strings.Join([]string{channel, programme, episode}, "-")
}

// PlaylistID is the canonical identifier of a programme.
func PlaylistID(channel, programme string) string {
	return strings.Join([]string{channel, programme}, "-")
}

func (c *Client) episodeURL(channel, programme, episode string) string {
	return fmt.Sprintf("%s/tv/%s/programme/%s/episode/%s", c.baseURL, channel, programme, episode)
}

func (c *Client) programmeURL(channel, programme string) string {
	return fmt.Sprintf("%s/tv/%s/programme/%s", c.baseURL, channel, programme)
}

func (c *Client) catalogURL(channel, programme string, page int) string {
	return fmt.Sprintf("%s/tv/catchUp?c=%s&p=%s&page=%d", c.baseURL, channel, programme, page)
}
