// Package cmd — history commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yooung1/sonntag/core/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the saved schedule history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every saved week",
	RunE:  runHistoryList,
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	records, err := history.NewFileStore(cfg.HistoryPath()).Load()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "History is empty")
		return nil
	}

	for _, rec := range records {
		parts := 0
		for _, section := range rec.Sections {
			parts += len(section.Items)
		}
		fmt.Fprintf(os.Stdout, "%-35s %d section(s), %d part(s)\n",
			rec.Metadata.WeekLabel, len(rec.Sections), parts)
	}
	return nil
}
