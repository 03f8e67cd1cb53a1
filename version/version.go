// Package version looks up the latest published release and tells the user when they are behind.
package version

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/catchup-cli/catchup/constant"
	"github.com/catchup-cli/catchup/filesystem"
	"github.com/catchup-cli/catchup/key"
	"github.com/catchup-cli/catchup/network"
	"github.com/catchup-cli/catchup/where"
	"github.com/metafates/gache"
	"github.com/spf13/viper"
)

var versionCacher = gache.New[string](&gache.Options{
	Path:       where.Release(),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

var releaseURL = "https://api.github.com/repos/" + constant.Repository + "/releases/latest"

// Latest returns the newest released version without its "v" prefix.
// Lookups are cached for two days.
func Latest(ctx context.Context) (string, error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	fetcher := network.NewFetcher(network.FromConfig(), viper.GetString(key.NetworkUserAgent))
	if err := fetcher.FetchJSON(ctx, releaseURL, "version", &release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	version := strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(version)
	return version, nil
}
