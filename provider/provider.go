// Package provider lists the built-in extractors and picks the one matching a URL.
package provider

import (
	"regexp"

	"github.com/catchup-cli/catchup/hls"
	"github.com/catchup-cli/catchup/key"
	"github.com/catchup-cli/catchup/network"
	"github.com/catchup-cli/catchup/provider/rthk"
	"github.com/catchup-cli/catchup/source"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Provider represents an extractor for one shape of URL.
type Provider struct {
	ID      string
	Name    string
	Pattern *regexp.Regexp
	// Example is a URL the provider accepts, shown in listings.
	Example      string
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Matches reports whether the provider handles url.
func (p *Provider) Matches(url string) bool {
	return p.Pattern.MatchString(url)
}

// Builtins returns built-in providers, most specific first.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:      rthk.EpisodeExtractorID,
			Name:    "RTHK",
			Pattern: rthk.EpisodeURL,
			Example: "https://www.rthk.hk/tv/dtt31/programme/livingwithanimals/episode/686344",
			CreateSource: func() (source.Source, error) {
				return rthk.NewEpisodeSource(newRTHKClient()), nil
			},
		},
		{
			ID:      rthk.PlaylistExtractorID,
			Name:    "RTHK programme",
			Pattern: rthk.ProgrammeURL,
			Example: "https://www.rthk.hk/tv/dtt31/programme/livingwithanimals",
			CreateSource: func() (source.Source, error) {
				return rthk.NewPlaylistSource(newRTHKClient()), nil
			},
		},
	}
}

// Get finds a provider by id.
func Get(id string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return p.ID == id
	})
}

// Match finds the provider handling url.
func Match(url string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return p.Matches(url)
	})
}

func newRTHKClient() *rthk.Client {
	fetcher := network.NewFetcher(network.FromConfig(), viper.GetString(key.NetworkUserAgent))
	return rthk.New(fetcher, hls.New(fetcher), rthk.Options{
		BaseURL:     viper.GetString(key.ExtractorBaseURL),
		Concurrency: viper.GetInt(key.PlaylistConcurrency),
	})
}
