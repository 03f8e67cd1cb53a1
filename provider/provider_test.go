package provider

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When getting a built-in provider", t, func() {
		p, ok := Get("rthk:playlist")
		Convey("Then it should be found", func() {
			So(ok, ShouldBeTrue)
			So(p.String(), ShouldEqual, "RTHK programme")
		})
	})
}

func TestMatch(t *testing.T) {
	Convey("Given built-in providers", t, func() {
		Convey("Every example URL matches its own provider", func() {
			for _, p := range Builtins() {
				matched, ok := Match(p.Example)
				So(ok, ShouldBeTrue)
				So(matched.ID, ShouldEqual, p.ID)
			}
		})

		Convey("Episode URLs go to the episode extractor", func() {
			p, ok := Match("https://www.rthk.hk/tv/dtt31/programme/livingwithanimals/episode/686344")
			So(ok, ShouldBeTrue)
			So(p.ID, ShouldEqual, "rthk")
		})

		Convey("Unknown URLs match nothing", func() {
			_, ok := Match("https://example.com/video/1")
			So(ok, ShouldBeFalse)
		})

		Convey("Sources are created with the provider id", func() {
			for _, p := range Builtins() {
				src, err := p.CreateSource()
				So(err, ShouldBeNil)
				So(src.ID(), ShouldEqual, p.ID)
			}
		})
	})
}
