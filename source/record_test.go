package source

import (
	"encoding/json"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMediaRecord(t *testing.T) {
	Convey("MediaRecord", t, func() {
		record := &MediaRecord{
			ID:      "dtt31-livingwithanimals-686344",
			Formats: []*Format{},
			Series:  mo.Some("動物愛傳承"),
		}

		Convey("String falls back to the id", func() {
			So(record.String(), ShouldEqual, "dtt31-livingwithanimals-686344")
			record.Title = mo.Some("港台電視 31 動物愛傳承 - 與牛同行")
			So(record.String(), ShouldEqual, "港台電視 31 動物愛傳承 - 與牛同行")
		})

		Convey("BestFormat", func() {
			So(record.BestFormat().IsAbsent(), ShouldBeTrue)

			record.Formats = []*Format{{FormatID: "hls-500"}, {FormatID: "hls-2000"}}
			best, ok := record.BestFormat().Get()
			So(ok, ShouldBeTrue)
			So(best.FormatID, ShouldEqual, "hls-2000")
		})

		Convey("Absent fields serialize as null, present ones as strings", func() {
			data, err := json.Marshal(record)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["series"], ShouldEqual, "動物愛傳承")
			So(decoded["title"], ShouldBeNil)
			So(decoded["release_date"], ShouldBeNil)
			So(decoded["formats"], ShouldResemble, []any{})
		})
	})
}

func TestFormat(t *testing.T) {
	Convey("Format", t, func() {
		f := &Format{URL: "https://example.com/720p.m3u8"}

		Convey("String representation", func() {
			So(f.String(), ShouldEqual, "https://example.com/720p.m3u8")
			f.FormatID = "hls-1200"
			So(f.String(), ShouldEqual, "hls-1200")
		})

		Convey("AudioOnly", func() {
			So(f.AudioOnly(), ShouldBeFalse)
			f.VCodec = "none"
			So(f.AudioOnly(), ShouldBeTrue)
		})
	})
}

func TestResult(t *testing.T) {
	Convey("Result", t, func() {
		Convey("A video result holds one record", func() {
			r := VideoResult(&MediaRecord{ID: "a-b-c"})
			So(r.Type, ShouldEqual, TypeVideo)
			So(r.ID(), ShouldEqual, "a-b-c")
			So(r.Records(), ShouldHaveLength, 1)
		})

		Convey("A playlist result flattens to its entries", func() {
			p := NewPlaylist("a-b", []*MediaRecord{{ID: "a-b-1"}, {ID: "a-b-2"}})
			r := PlaylistResult(p)
			So(r.Type, ShouldEqual, TypePlaylist)
			So(r.ID(), ShouldEqual, "a-b")
			So(r.Records()[1].ID, ShouldEqual, "a-b-2")
		})

		Convey("NewPlaylist never keeps a nil slice", func() {
			p := NewPlaylist("a-b", nil)
			So(p.Entries, ShouldNotBeNil)
			So(p.Entries, ShouldBeEmpty)
		})
	})
}
