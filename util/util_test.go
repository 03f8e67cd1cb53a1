package util

import (
	"regexp"
	"testing"

	"github.com/catchup-cli/catchup/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		So(SanitizeFilename("dtt31 livingwithanimals"), ShouldEqual, "dtt31_livingwithanimals")
		So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "episode", "episodes"), ShouldEqual, "1 episode")
		So(Quantify(15, "episode", "episodes"), ShouldEqual, "15 episodes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("history"), ShouldEqual, "History")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`/tv/(?P<channel>[^/]+)/programme/(?P<programme>[^/]+)`)

		Convey("Should map named groups", func() {
			groups := ReGroups(re, "https://www.rthk.hk/tv/dtt31/programme/hongkongecologists")
			So(groups["channel"], ShouldEqual, "dtt31")
			So(groups["programme"], ShouldEqual, "hongkongecologists")
		})

		Convey("Should return an empty map without a match", func() {
			So(ReGroups(re, "https://example.com"), ShouldBeEmpty)
		})
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given an in-memory tree", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.MkdirAll("/a/b", 0o755), ShouldBeNil)
		So(fs.WriteFile("/a/b/c.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("Deleting a file keeps its directory", func() {
			So(Delete("/a/b/c.json"), ShouldBeNil)
			So(Delete("/a/b/c.json"), ShouldNotBeNil)
			exists, _ := fs.DirExists("/a/b")
			So(exists, ShouldBeTrue)
		})

		Convey("Deleting a directory removes everything below it", func() {
			So(Delete("/a"), ShouldBeNil)
			exists, _ := fs.DirExists("/a")
			So(exists, ShouldBeFalse)
		})
	})
}
