// Package cmd implements the CLI commands for sonntag using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yooung1/sonntag/config"
	"github.com/yooung1/sonntag/internal/logutil"
)

var (
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "sonntag",
	Short: "sonntag — extract weekly meeting schedules into editable records",
	Long: `sonntag crawls the activity guide site, extracts each week's meeting
program, and keeps a deduplicated history you can edit and export as PDF.

Usage:
  sonntag extract --week
  sonntag history list
  sonntag export "3-9 de junio" --pdf`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		logutil.SetLevel(flagLogLevel)
	})

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (defaults apply when absent)")
	rootCmd.PersistentFlags().StringVarP(&flagLogLevel, "loglevel", "l", "info", "Log level: debug, info, warn, error, fatal")
}

// loadConfig reads the configured or default settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
