package history

import (
	"testing"

	"github.com/catchup-cli/catchup/filesystem"
	"github.com/catchup-cli/catchup/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given an extracted record", t, func() {
		record := &source.MediaRecord{
			ID:          "dtt31-livingwithanimals-686344",
			Title:       mo.Some("港台電視 31 動物愛傳承 - 與牛同行"),
			Series:      mo.Some("動物愛傳承"),
			Episode:     mo.Some("與牛同行"),
			ReleaseDate: mo.Some("20200816"),
			WebpageURL:  "https://www.rthk.hk/tv/dtt31/programme/livingwithanimals/episode/686344",
			Extractor:   "rthk",
		}

		Convey("When saving the record", func() {
			err := Save(record)
			Convey("Then the error should be nil", func() {
				So(err, ShouldBeNil)

				Convey("And the record should be saved", func() {
					saved, err := Get()
					So(err, ShouldBeNil)

					entry, ok := saved["dtt31-livingwithanimals-686344 (rthk)"]
					So(ok, ShouldBeTrue)
					So(entry.Series, ShouldEqual, "動物愛傳承")
					So(entry.ReleaseDate, ShouldEqual, "20200816")
					So(entry.String(), ShouldEqual, "動物愛傳承 : 與牛同行")
				})

				Convey("And saving it again bumps its counter", func() {
					before, err := Get()
					So(err, ShouldBeNil)
					times := before["dtt31-livingwithanimals-686344 (rthk)"].Times

					So(Save(record), ShouldBeNil)

					after, err := Get()
					So(err, ShouldBeNil)
					So(after["dtt31-livingwithanimals-686344 (rthk)"].Times, ShouldEqual, times+1)
				})

				Convey("And removing it deletes it", func() {
					saved, err := Get()
					So(err, ShouldBeNil)

					So(Remove(saved["dtt31-livingwithanimals-686344 (rthk)"]), ShouldBeNil)

					saved, err = Get()
					So(err, ShouldBeNil)
					_, ok := saved["dtt31-livingwithanimals-686344 (rthk)"]
					So(ok, ShouldBeFalse)
				})
			})
		})
	})

	Convey("Given a record without metadata", t, func() {
		record := &source.MediaRecord{ID: "dtt31-pets-1", Extractor: "rthk"}

		Convey("It is listed by its id", func() {
			So(Save(record), ShouldBeNil)

			records, err := List()
			So(err, ShouldBeNil)

			var found *SavedRecord
			for _, r := range records {
				if r.ID == "dtt31-pets-1" {
					found = r
				}
			}
			So(found, ShouldNotBeNil)
			So(found.String(), ShouldEqual, "dtt31-pets-1")
		})
	})

	Convey("Saving nothing is a no-op", t, func() {
		So(Save(), ShouldBeNil)
	})
}
