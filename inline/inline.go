// Package inline runs one extraction without any interactive prompt and prints the result.
package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/catchup-cli/catchup/history"
	"github.com/catchup-cli/catchup/key"
	"github.com/catchup-cli/catchup/log"
	"github.com/catchup-cli/catchup/source"
	"github.com/spf13/viper"
)

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Source == nil {
		return errors.New("no source to extract with")
	}

	log.Infof("extracting %s with %s", options.URL, options.Source.ID())
	result, err := options.Source.Extract(ctx, options.URL)
	if err != nil {
		return err
	}

	if result.Playlist != nil && options.EpisodesFilter.IsPresent() {
		filter := options.EpisodesFilter.MustGet()
		filtered, err := filter(result.Playlist.Entries)
		if err != nil {
			return err
		}
		result.Playlist.Entries = filtered
	}

	if viper.GetBool(key.HistorySave) {
		if err := history.Save(result.Records()...); err != nil {
			log.Warnf("failed to save history: %v", err)
		}
	}

	if options.Json {
		return writeJson(options.Out, result, options)
	}

	return writeText(options.Out, result)
}

// writeText prints one URL per record: its best format, or its page
// when no format could be extracted.
func writeText(out io.Writer, result *source.Result) error {
	for _, record := range result.Records() {
		url := record.WebpageURL
		if best, ok := record.BestFormat().Get(); ok {
			url = best.URL
		}

		log.Info("Found " + record.String())
		if _, err := fmt.Fprintln(out, url); err != nil {
			return err
		}
	}
	return nil
}

func writeJson(out io.Writer, result *source.Result, options *Options) error {
	data, err := asJson(result, options)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = out.Write(data)
	return err
}
