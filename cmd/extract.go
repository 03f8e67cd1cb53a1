package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/catchup-cli/catchup/filesystem"
	"github.com/catchup-cli/catchup/inline"
	"github.com/catchup-cli/catchup/key"
	"github.com/catchup-cli/catchup/provider"
	"github.com/catchup-cli/catchup/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func addExtractFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	cmd.Flags().StringP("episodes", "e", "", "Criteria for selecting episodes of a programme")
	cmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")
	cmd.Flags().BoolP("pretty", "p", false, "Indent JSON output")
	cmd.Flags().StringP("extractor", "x", "", "Force an extractor instead of matching the URL")
	lo.Must0(cmd.RegisterFlagCompletionFunc("extractor", completionExtractors))
}

func completionExtractors(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
		return p.ID
	}), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(extractCmd)
	addExtractFlags(extractCmd)
	lo.Must0(viper.BindPFlag(key.OutputPretty, extractCmd.Flags().Lookup("pretty")))
}

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Extract the streams and metadata of an episode or a whole programme",
	Long: `Extract the streams and metadata of an episode or a whole programme.

Without --json one URL is printed per episode: its best stream, or its page
when no stream could be found.

Episode selectors (programmes only):
  first - first episode in the list
  last - last episode in the list
  all - all episodes in the list
  [number] - select episode by index (starting from 0)
  [from]-[to] - select episodes by range
  @[substring]@ - select episodes by title substring`,
	Example: `  catchup extract https://www.rthk.hk/tv/dtt31/programme/livingwithanimals/episode/686344
  catchup extract -j -e 0-4 https://www.rthk.hk/tv/dtt31/programme/livingwithanimals`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(runExtract(cmd, args[0]))
	},
}

func runExtract(cmd *cobra.Command, url string) error {
	url = strings.TrimSpace(url)

	var (
		p  *provider.Provider
		ok bool
	)
	if id := lo.Must(cmd.Flags().GetString("extractor")); id != "" {
		p, ok = provider.Get(id)
		if !ok {
			return fmt.Errorf("extractor not found: %s", id)
		}
	} else {
		p, ok = provider.Match(url)
		if !ok {
			return fmt.Errorf("unsupported url: %s", url)
		}
	}

	src, err := p.CreateSource()
	if err != nil {
		return err
	}

	var writer io.Writer = os.Stdout
	asJson := lo.Must(cmd.Flags().GetBool("json"))
	if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
		output = outputPath(output, url, asJson)
		if err := filesystem.API().MkdirAll(filepath.Dir(output), os.ModePerm); err != nil {
			return err
		}
		file, err := filesystem.API().Create(output)
		if err != nil {
			return err
		}
		defer util.Ignore(file.Close)
		writer = file
	}

	episodesFilter := mo.None[inline.EpisodesFilter]()
	if episodeFlag := lo.Must(cmd.Flags().GetString("episodes")); episodeFlag != "" {
		fn, err := inline.ParseEpisodesFilter(episodeFlag)
		if err != nil {
			return err
		}
		episodesFilter = mo.Some(fn)
	}

	pretty := lo.Must(cmd.Flags().GetBool("pretty"))
	if !cmd.Flags().Changed("pretty") {
		pretty = viper.GetBool(key.OutputPretty)
	}

	return inline.Run(cmd.Context(), &inline.Options{
		Out:            writer,
		Source:         src,
		URL:            url,
		Json:           asJson,
		Pretty:         pretty,
		EpisodesFilter: episodesFilter,
	})
}

// outputPath names the output file after the URL when output is a directory.
func outputPath(output, url string, asJson bool) string {
	isDir, err := filesystem.API().IsDir(output)
	if !strings.HasSuffix(output, string(filepath.Separator)) && (err != nil || !isDir) {
		return output
	}

	ext := ".txt"
	if asJson {
		ext = ".json"
	}

	name := util.SanitizeFilename(strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://"))
	return filepath.Join(output, name+ext)
}

func init() {
	extractCmd.AddCommand(extractSchemaCmd)
}

var optionalString = reflect.TypeFor[mo.Option[string]]()

// extractSchemaCmd prints the JSON schema of extract --json output.
var extractSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the extract --json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Mapper = func(t reflect.Type) *jsonschema.Schema {
			if t == optionalString {
				return &jsonschema.Schema{
					OneOf: []*jsonschema.Schema{{Type: "string"}, {Type: "null"}},
				}
			}
			return nil
		}
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "output", "result":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(reflector.Reflect(&inline.Output{})))
	},
}
