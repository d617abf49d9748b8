// Package cmd — extract command.
// Runs one extraction: locate this week in the site's navigation, crawl
// the selected horizon, parse each page, and merge the results into the
// saved history.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yooung1/sonntag/core"
	"github.com/yooung1/sonntag/core/fetch"
	"github.com/yooung1/sonntag/core/history"
	"github.com/yooung1/sonntag/pipeline"
)

// Mode flags (mutually exclusive).
var (
	flagWeek  bool
	flagMonth bool
	flagAll   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the schedule for this week, this month, or everything ahead",
	Long: `Extract crawls the activity guide and saves the parsed programs.

Examples:
  sonntag extract --week     this week's single program
  sonntag extract --month    from this week to the end of the month
  sonntag extract --all      everything from this week onward`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().BoolVar(&flagWeek, "week", false, "Extract only the current week")
	extractCmd.Flags().BoolVar(&flagMonth, "month", false, "Extract the rest of the current month")
	extractCmd.Flags().BoolVar(&flagAll, "all", false, "Extract every available week from now on")
}

func runExtract(cmd *cobra.Command, args []string) error {
	if err := validateModeFlags(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runner := &pipeline.Runner{
		Cfg: cfg,
		NewSource: func() (core.PageSource, error) {
			return fetch.New(fetch.WithTimeout(cfg.HTTPTimeout())), nil
		},
		Store: history.NewFileStore(cfg.HistoryPath()),
	}

	ctx := context.Background()
	var records []core.ProgramRecord
	switch {
	case flagWeek:
		records, err = runner.ExtractWeek(ctx)
	case flagMonth:
		records, err = runner.ExtractMonth(ctx)
	case flagAll:
		records, err = runner.ExtractAll(ctx)
	}
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No data extracted")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(os.Stdout, "✓ Saved: %s\n", rec.Metadata.WeekLabel)
	}
	fmt.Fprintf(os.Stdout, "%d program(s) merged into %s\n", len(records), cfg.HistoryPath())
	return nil
}

// validateModeFlags checks exactly one extraction mode is chosen.
func validateModeFlags() error {
	count := 0
	if flagWeek {
		count++
	}
	if flagMonth {
		count++
	}
	if flagAll {
		count++
	}
	if count != 1 {
		return fmt.Errorf("exactly one mode is required: --week, --month, or --all")
	}
	return nil
}
