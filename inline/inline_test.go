package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/catchup-cli/catchup/filesystem"
	"github.com/catchup-cli/catchup/history"
	"github.com/catchup-cli/catchup/key"
	"github.com/catchup-cli/catchup/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

type testSource struct {
	result *source.Result
	err    error
}

func (testSource) Name() string { return "Test" }

func (testSource) ID() string { return "test" }

func (s testSource) Extract(context.Context, string) (*source.Result, error) {
	return s.result, s.err
}

func record(id, title string, formats ...*source.Format) *source.MediaRecord {
	r := &source.MediaRecord{
		ID:         id,
		Formats:    formats,
		WebpageURL: "https://www.rthk.hk/tv/dtt31/programme/pets/episode/" + id,
		Extractor:  "test",
	}
	if title != "" {
		r.Title = mo.Some(title)
	}
	if r.Formats == nil {
		r.Formats = []*source.Format{}
	}
	return r
}

func playlist() *source.Result {
	return source.PlaylistResult(source.NewPlaylist("dtt31-pets", []*source.MediaRecord{
		record("1", "Cats"),
		record("2", "Dogs", &source.Format{FormatID: "hls-640", URL: "https://cdn.example/2/360p.m3u8"}, &source.Format{FormatID: "hls-2176", URL: "https://cdn.example/2/720p.m3u8"}),
		record("3", "Cows"),
	}))
}

func TestWriteJsonResponse(t *testing.T) {
	Convey("writeJson", t, func() {
		Convey("Should produce valid JSON for an empty playlist", func() {
			var buf bytes.Buffer
			opts := &Options{URL: "https://www.rthk.hk/tv/dtt31/programme/pets", Json: true, Source: testSource{}}
			err := writeJson(&buf, source.PlaylistResult(source.NewPlaylist("dtt31-pets", nil)), opts)
			So(err, ShouldBeNil)

			var output map[string]any
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output["url"], ShouldEqual, opts.URL)
			So(output["extractor"], ShouldEqual, "test")

			result := output["result"].(map[string]any)
			So(result["_type"], ShouldEqual, "playlist")
			So(result["playlist"].(map[string]any)["entries"], ShouldHaveLength, 0)
		})

		Convey("Absent fields are null", func() {
			var buf bytes.Buffer
			err := writeJson(&buf, source.VideoResult(record("1", "")), &Options{Json: true})
			So(err, ShouldBeNil)

			var output map[string]any
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			rec := output["result"].(map[string]any)["record"].(map[string]any)
			So(rec["id"], ShouldEqual, "1")
			So(rec["title"], ShouldBeNil)
			So(rec["formats"], ShouldHaveLength, 0)
		})

		Convey("Pretty output is indented", func() {
			var buf bytes.Buffer
			So(writeJson(&buf, source.VideoResult(record("1", "")), &Options{Pretty: true}), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "\n  \"url\"")
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a source returning a playlist", t, func() {
		viper.Set(key.HistorySave, false)
		var buf bytes.Buffer

		Convey("Text output prints the best format or the page of every record", func() {
			err := Run(context.Background(), &Options{Out: &buf, Source: testSource{result: playlist()}})
			So(err, ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldResemble, []string{
				"https://www.rthk.hk/tv/dtt31/programme/pets/episode/1",
				"https://cdn.example/2/720p.m3u8",
				"https://www.rthk.hk/tv/dtt31/programme/pets/episode/3",
			})
		})

		Convey("An episodes filter narrows the playlist", func() {
			filter, err := ParseEpisodesFilter("last")
			So(err, ShouldBeNil)

			err = Run(context.Background(), &Options{
				Out:            &buf,
				Source:         testSource{result: playlist()},
				EpisodesFilter: mo.Some(filter),
			})
			So(err, ShouldBeNil)
			So(strings.TrimSpace(buf.String()), ShouldEqual, "https://www.rthk.hk/tv/dtt31/programme/pets/episode/3")
		})

		Convey("Extraction errors are returned as is", func() {
			boom := errors.New("boom")
			err := Run(context.Background(), &Options{Out: &buf, Source: testSource{err: boom}})
			So(errors.Is(err, boom), ShouldBeTrue)
			So(buf.Len(), ShouldEqual, 0)
		})

		Convey("A missing source is an error", func() {
			So(Run(context.Background(), &Options{Out: &buf}), ShouldNotBeNil)
		})

		Convey("Extracted records are saved to history when enabled", func() {
			viper.Set(key.HistorySave, true)
			defer viper.Set(key.HistorySave, false)

			err := Run(context.Background(), &Options{Out: &buf, Source: testSource{result: playlist()}, Json: true})
			So(err, ShouldBeNil)

			saved, err := history.Get()
			So(err, ShouldBeNil)
			So(saved, ShouldContainKey, "2 (test)")
		})
	})
}

func TestParseEpisodesFilter(t *testing.T) {
	Convey("ParseEpisodesFilter", t, func() {
		records := playlist().Playlist.Entries
		ids := func(rs []*source.MediaRecord) []string {
			out := make([]string, len(rs))
			for i, r := range rs {
				out[i] = r.ID
			}
			return out
		}

		for _, tc := range []struct {
			description string
			want        []string
		}{
			{"first", []string{"1"}},
			{"last", []string{"3"}},
			{"all", []string{"1", "2", "3"}},
			{"1", []string{"2"}},
			{"9", []string{}},
			{"0-1", []string{"1", "2"}},
			{"1-9", []string{"2", "3"}},
			{"@dog@", []string{"2"}},
			{"@O@", []string{"2", "3"}},
		} {
			filter, err := ParseEpisodesFilter(tc.description)
			So(err, ShouldBeNil)

			filtered, err := filter(records)
			So(err, ShouldBeNil)
			So(ids(filtered), ShouldResemble, tc.want)
		}

		Convey("Invalid descriptions are rejected", func() {
			_, err := ParseEpisodesFilter("second")
			So(err, ShouldNotBeNil)

			_, err = ParseEpisodesFilter("@")
			So(err, ShouldNotBeNil)
		})
	})
}
