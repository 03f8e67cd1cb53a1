package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/catchup-cli/catchup/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honors the override variable", func() {
			So(os.Setenv(EnvConfigPath, "/tmp/catchup-test"), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, "/tmp/catchup-test")
			So(History(), ShouldEqual, filepath.Join("/tmp/catchup-test", "history.json"))
		})

		Convey("Logs() lives under Config()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			So(filepath.Dir(path), ShouldEqual, Config())
		})

		Convey("Release() lives under Cache()", func() {
			So(filepath.Dir(Release()), ShouldEqual, Cache())
		})
	})
}
