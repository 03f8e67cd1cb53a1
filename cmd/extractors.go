package cmd

import (
	"encoding/json"

	"github.com/catchup-cli/catchup/color"
	"github.com/catchup-cli/catchup/icon"
	"github.com/catchup-cli/catchup/provider"
	"github.com/catchup-cli/catchup/provider/rthk"
	"github.com/catchup-cli/catchup/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(extractorsCmd)
	extractorsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

var extractorsCmd = &cobra.Command{
	Use:     "extractors",
	Aliases: []string{"sources"},
	Short:   "List the supported extractors and the URLs they accept",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		providers := provider.Builtins()

		if lo.Must(cmd.Flags().GetBool("json")) {
			type entry struct {
				ID      string `json:"id"`
				Name    string `json:"name"`
				Pattern string `json:"pattern"`
				Example string `json:"example"`
			}

			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(lo.Map(providers, func(p *provider.Provider, _ int) entry {
				return entry{ID: p.ID, Name: p.Name, Pattern: p.Pattern.String(), Example: p.Example}
			})))
			return
		}

		for i, p := range providers {
			symbol := icon.Get(icon.Episode)
			if p.ID == rthk.PlaylistExtractorID {
				symbol = icon.Get(icon.Playlist)
			}

			cmd.Printf("%s %s %s\n", symbol, style.Bold(p.Name), style.Fg(color.Purple)("("+p.ID+")"))
			cmd.Printf("%s %s\n", icon.Get(icon.Link), style.Faint(p.Example))

			if i < len(providers)-1 {
				cmd.Println()
			}
		}
	},
}
