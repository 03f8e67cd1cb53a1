package rthk

import (
	"context"
	"fmt"
	"regexp"

	"github.com/catchup-cli/catchup/source"
	"github.com/catchup-cli/catchup/util"
)

const (
	EpisodeExtractorID  = "rthk"
	PlaylistExtractorID = "rthk:playlist"
)

var (
	// EpisodeURL matches episode pages.
	EpisodeURL = regexp.MustCompile(`^https?://(?:www\.)?rthk\.hk/tv/(?P<channel>[^/?#]+)/programme/(?P<programme>[^/?#]+)/episode/(?P<episode>[^/?#]+)/?(?:[?#].*)?$`)

	// ProgrammeURL matches programme pages.
	ProgrammeURL = regexp.MustCompile(`^https?://(?:www\.)?rthk\.hk/tv/(?P<channel>[^/?#]+)/programme/(?P<programme>[^/?#]+)/?(?:[?#].*)?$`)
)

// EpisodeSource adapts Client.Episode to source.Source.
type EpisodeSource struct {
	client *Client
}

// NewEpisodeSource returns the episode source backed by client.
func NewEpisodeSource(client *Client) *EpisodeSource {
	return &EpisodeSource{client: client}
}

func (*EpisodeSource) Name() string { return "RTHK" }

func (*EpisodeSource) ID() string { return EpisodeExtractorID }

func (s *EpisodeSource) Extract(ctx context.Context, url string) (*source.Result, error) {
	groups := util.ReGroups(EpisodeURL, url)
	if len(groups) == 0 {
		return nil, fmt.Errorf("not an episode url: %s", url)
	}

	record, err := s.client.Episode(ctx, groups["channel"], groups["programme"], groups["episode"])
	if err != nil {
		return nil, err
	}
	return source.VideoResult(record), nil
}

// PlaylistSource adapts Client.Playlist to source.Source.
type PlaylistSource struct {
	client *Client
}

// NewPlaylistSource returns the programme source backed by client.
func NewPlaylistSource(client *Client) *PlaylistSource {
	return &PlaylistSource{client: client}
}

func (*PlaylistSource) Name() string { return "RTHK programme" }

func (*PlaylistSource) ID() string { return PlaylistExtractorID }

func (s *PlaylistSource) Extract(ctx context.Context, url string) (*source.Result, error) {
	groups := util.ReGroups(ProgrammeURL, url)
	if len(groups) == 0 {
		return nil, fmt.Errorf("not a programme url: %s", url)
	}

	playlist, err := s.client.Playlist(ctx, groups["channel"], groups["programme"])
	if err != nil {
		return nil, err
	}
	return source.PlaylistResult(playlist), nil
}
