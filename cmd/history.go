// Package cmd implements the command-line interface for subgrab.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/subgrab-cli/subgrab/color"
	"github.com/subgrab-cli/subgrab/history"
	"github.com/subgrab-cli/subgrab/style"
	"github.com/subgrab-cli/subgrab/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists the recorded download batches.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display the recorded download batches",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.Get()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println("No download batches recorded yet")
			return
		}

		for i, record := range records {
			cmd.Printf("%s %s\n",
				style.New().Bold(true).Foreground(color.HiPurple).Render(record.FinishedAt.Format("2006-01-02 15:04")),
				style.Faint(record.InputFile),
			)
			cmd.Printf("  %s into %s",
				util.Quantify(len(record.Downloaded), "episode", "episodes"),
				record.OutputDir,
			)
			if len(record.Failed) > 0 {
				cmd.Printf(" %s", style.Fg(color.Red)(fmt.Sprintf("(%d failed)", len(record.Failed))))
			}
			cmd.Println()

			if i < len(records)-1 {
				cmd.Println()
			}
		}
	},
}
