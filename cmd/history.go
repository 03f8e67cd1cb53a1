package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/catchup-cli/catchup/color"
	"github.com/catchup-cli/catchup/history"
	"github.com/catchup-cli/catchup/icon"
	"github.com/catchup-cli/catchup/style"
	"github.com/catchup-cli/catchup/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().IntP("limit", "n", 0, "Show only the most recent entries")
	historyCmd.Flags().StringP("remove", "r", "", "Remove the entry with this id")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously extracted episodes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.List()
		handleErr(err)

		if id := lo.Must(cmd.Flags().GetString("remove")); id != "" {
			matching := lo.Filter(records, func(r *history.SavedRecord, _ int) bool {
				return r.ID == id
			})
			if len(matching) == 0 {
				handleErr(fmt.Errorf("no history entry with id %s", id))
			}

			for _, r := range matching {
				handleErr(history.Remove(r))
			}
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), util.Quantify(len(matching), "entry", "entries"))
			return
		}

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && len(records) > limit {
			records = records[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("No history yet"))
			return
		}

		idWidth := util.Max(lo.Map(records, func(r *history.SavedRecord, _ int) int {
			return len(r.ID)
		})...)
		titleWidth := util.Max(util.TerminalWidth(80)-idWidth-24, 10)

		for _, r := range records {
			title := r.String()
			if runes := []rune(title); len(runes) > titleWidth {
				title = string(runes[:titleWidth-1]) + "…"
			}

			cmd.Printf(
				"%s  %s  %s\n",
				style.Fg(color.Purple)(r.ID+strings.Repeat(" ", idWidth-len(r.ID))),
				style.Faint(r.ExtractedAt.Format("2006-01-02 15:04")),
				title,
			)
		}
	},
}
