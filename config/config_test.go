package config

import (
	"os"
	"testing"

	"github.com/catchup-cli/catchup/filesystem"
	"github.com/catchup-cli/catchup/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every default", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.ExtractorBaseURL), ShouldEqual, "https://www.rthk.hk")
			So(viper.GetInt(key.PlaylistConcurrency), ShouldEqual, 1)
		})

		Convey("Should let environment variables override defaults", func() {
			So(os.Setenv("CATCHUP_PLAYLIST_CONCURRENCY", "4"), ShouldBeNil)
			defer os.Unsetenv("CATCHUP_PLAYLIST_CONCURRENCY")

			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.PlaylistConcurrency), ShouldEqual, 4)
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.ExtractorBaseURL]

		Convey("Env should be prefixed and upper-cased", func() {
			So(field.Env(), ShouldEqual, "CATCHUP_EXTRACTOR_BASE_URL")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("network.tls_fingerprint"), ShouldEqual, "network_tls_fingerprint")
		})

		Convey("typeName should reflect the default value", func() {
			So(field.typeName(), ShouldEqual, "string")
			concurrency := Default[key.PlaylistConcurrency]
			So(concurrency.typeName(), ShouldEqual, "int")
		})
	})
}
