// Package hls expands HLS manifests into the list of formats they advertise.
package hls

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/catchup-cli/catchup/log"
	"github.com/catchup-cli/catchup/source"
	"github.com/grafov/m3u8"
	"github.com/samber/lo"
)

const protocol = "m3u8_native"

// ErrEmptyManifest is returned for a master playlist with no usable variants.
var ErrEmptyManifest = errors.New("manifest lists no variants")

// Options control how formats derived from a manifest are labelled.
type Options struct {
	// ID labels log lines.
	ID string
	// Ext is the container hint given to every format.
	Ext string
	// FormatID prefixes every format identifier.
	FormatID string
}

// Fetcher downloads a manifest.
type Fetcher interface {
	FetchText(ctx context.Context, url, id string) (string, error)
}

// Extractor turns manifest URLs into formats.
type Extractor struct {
	fetcher Fetcher
}

// New returns an Extractor downloading manifests through fetcher.
func New(fetcher Fetcher) *Extractor {
	return &Extractor{fetcher: fetcher}
}

// Extract downloads and parses the manifest at manifestURL.
// Formats are ordered from worst to best.
func (e *Extractor) Extract(ctx context.Context, manifestURL string, opts Options) ([]*source.Format, error) {
	body, err := e.fetcher.FetchText(ctx, manifestURL, opts.ID)
	if err != nil {
		return nil, fmt.Errorf("download m3u8 information: %w", err)
	}

	return Parse(manifestURL, body, opts)
}

// Formats is Extract for callers that can do without formats.
// Any failure is logged and yields an empty slice.
func (e *Extractor) Formats(ctx context.Context, manifestURL string, opts Options) []*source.Format {
	formats, err := e.Extract(ctx, manifestURL, opts)
	if err != nil {
		log.Warnf("%s: failed to expand %s: %v", opts.ID, manifestURL, err)
		return []*source.Format{}
	}

	return formats
}

// Parse parses body as the manifest found at manifestURL.
func Parse(manifestURL, body string, opts Options) ([]*source.Format, error) {
	base, err := url.Parse(manifestURL)
	if err != nil {
		return nil, fmt.Errorf("parse manifest url: %w", err)
	}

	playlist, listType, err := m3u8.DecodeFrom(strings.NewReader(body), false)
	if err != nil {
		return nil, fmt.Errorf("parse m3u8: %w", err)
	}

	switch listType {
	case m3u8.MEDIA:
		// Not a master playlist, the manifest itself is the only format.
		return []*source.Format{{
			FormatID:    opts.FormatID,
			URL:         manifestURL,
			ManifestURL: manifestURL,
			Ext:         opts.Ext,
			Protocol:    protocol,
		}}, nil
	case m3u8.MASTER:
		master, ok := playlist.(*m3u8.MasterPlaylist)
		if !ok {
			return nil, fmt.Errorf("unexpected playlist type %T", playlist)
		}
		return masterFormats(base, master, opts)
	default:
		return nil, fmt.Errorf("unknown playlist type %v", listType)
	}
}

func masterFormats(base *url.URL, master *m3u8.MasterPlaylist, opts Options) ([]*source.Format, error) {
	var (
		formats []*source.Format
		seenIDs = make(map[string]int)
		seenURL = make(map[string]bool)
	)

	add := func(f *source.Format) {
		if seenURL[f.URL] {
			return
		}
		seenURL[f.URL] = true

		if n := seenIDs[f.FormatID]; n > 0 {
			seenIDs[f.FormatID]++
			f.FormatID = fmt.Sprintf("%s-%d", f.FormatID, n)
		} else {
			seenIDs[f.FormatID] = 1
		}
		formats = append(formats, f)
	}

	for _, variant := range master.Variants {
		if variant == nil {
			continue
		}

		for _, alt := range variant.Alternatives {
			if alt == nil || alt.URI == "" || !strings.EqualFold(alt.Type, "AUDIO") {
				continue
			}
			add(&source.Format{
				FormatID:    joinID(opts.FormatID, alt.GroupId, alt.Name),
				URL:         resolve(base, alt.URI),
				ManifestURL: base.String(),
				Ext:         opts.Ext,
				Protocol:    protocol,
				VCodec:      "none",
				Language:    alt.Language,
			})
		}

		if variant.Iframe || variant.URI == "" {
			continue
		}
		add(variantFormat(base, variant, opts))
	}

	if len(formats) == 0 {
		return nil, ErrEmptyManifest
	}

	slices.SortStableFunc(formats, compareQuality)
	return formats, nil
}

func variantFormat(base *url.URL, variant *m3u8.Variant, opts Options) *source.Format {
	bandwidth := variant.AverageBandwidth
	if bandwidth == 0 {
		bandwidth = variant.Bandwidth
	}
	tbr := float64(bandwidth) / 1000

	f := &source.Format{
		URL:         resolve(base, variant.URI),
		ManifestURL: base.String(),
		Ext:         opts.Ext,
		Protocol:    protocol,
		TBR:         tbr,
		FPS:         variant.FrameRate,
	}

	if tbr > 0 {
		f.FormatID = joinID(opts.FormatID, strconv.Itoa(int(math.Round(tbr))))
	} else {
		f.FormatID = joinID(opts.FormatID, strconv.Itoa(len(variant.URI)))
	}

	if variant.Resolution != "" {
		var w, h int
		if _, err := fmt.Sscanf(variant.Resolution, "%dx%d", &w, &h); err == nil {
			f.Width, f.Height = w, h
		}
	}

	f.VCodec, f.ACodec = splitCodecs(variant.Codecs)
	return f
}

var (
	videoCodecs = []string{"avc", "hvc", "hev", "vp8", "vp9", "vp09", "av01", "dvh", "theora", "mp4v"}
	audioCodecs = []string{"mp4a", "ac-3", "ec-3", "opus", "vorbis", "mp3", "flac", "alac", "dts"}
)

// splitCodecs sorts a CODECS attribute into video and audio.
// A list naming only one kind marks the other "none".
func splitCodecs(codecs string) (vcodec, acodec string) {
	if strings.TrimSpace(codecs) == "" {
		return "", ""
	}

	hasPrefix := func(codec string, prefixes []string) bool {
		return lo.SomeBy(prefixes, func(p string) bool {
			return strings.HasPrefix(strings.ToLower(codec), p)
		})
	}

	for _, codec := range strings.Split(codecs, ",") {
		codec = strings.TrimSpace(codec)
		switch {
		case vcodec == "" && hasPrefix(codec, videoCodecs):
			vcodec = codec
		case acodec == "" && hasPrefix(codec, audioCodecs):
			acodec = codec
		}
	}

	switch {
	case vcodec == "" && acodec != "":
		vcodec = "none"
	case acodec == "" && vcodec != "":
		acodec = "none"
	}

	return vcodec, acodec
}

// compareQuality orders audio-only formats first, then by height and bitrate.
func compareQuality(a, b *source.Format) int {
	if a.AudioOnly() != b.AudioOnly() {
		if a.AudioOnly() {
			return -1
		}
		return 1
	}
	if a.Height != b.Height {
		return a.Height - b.Height
	}
	switch {
	case a.TBR < b.TBR:
		return -1
	case a.TBR > b.TBR:
		return 1
	}
	return 0
}

func resolve(base *url.URL, ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

func joinID(parts ...string) string {
	return strings.Join(lo.Compact(parts), "-")
}
