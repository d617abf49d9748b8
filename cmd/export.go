// Package cmd — export command.
// Renders one saved record as PDF, JSON, or Markdown.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yooung1/sonntag/core"
	"github.com/yooung1/sonntag/core/history"
	"github.com/yooung1/sonntag/core/render"
)

// Output format flags (mutually exclusive).
var (
	flagExportPDF      bool
	flagExportJSON     bool
	flagExportMarkdown bool
	flagExportDir      string
)

var exportCmd = &cobra.Command{
	Use:   "export <week-label>",
	Short: "Export a saved week in the chosen format",
	Long: `Export renders one record from the history.

Examples:
  sonntag export "3-9 de junio" --pdf
  sonntag export "3-9 de junio" --json --output_dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVar(&flagExportPDF, "pdf", false, "Export as PDF assignment sheet")
	exportCmd.Flags().BoolVar(&flagExportJSON, "json", false, "Export as JSON")
	exportCmd.Flags().BoolVar(&flagExportMarkdown, "markdown", false, "Export as Markdown")
	exportCmd.Flags().StringVar(&flagExportDir, "output_dir", "", "Output directory (default: the data directory's pdf folder)")
}

func runExport(cmd *cobra.Command, args []string) error {
	weekLabel := args[0]

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	records, err := history.NewFileStore(cfg.HistoryPath()).Load()
	if err != nil {
		return err
	}
	rec, ok := findRecord(records, weekLabel)
	if !ok {
		return fmt.Errorf("no saved record for %q", weekLabel)
	}

	data, err := renderer.Render(rec)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", weekLabel, err)
	}

	dir := flagExportDir
	if dir == "" {
		dir = cfg.PDFDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, render.Filename(rec.Metadata.WeekLabel, renderer.Extension()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// findRecord matches a week label the same way the locator matches site
// navigation: lowercased substring, first hit wins.
func findRecord(records []core.ProgramRecord, weekLabel string) (core.ProgramRecord, bool) {
	needle := strings.ToLower(weekLabel)
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Metadata.WeekLabel), needle) {
			return rec, true
		}
	}
	return core.ProgramRecord{}, false
}

// selectRenderer picks the renderer from the format flags.
func selectRenderer() (core.Renderer, error) {
	count := 0
	if flagExportPDF {
		count++
	}
	if flagExportJSON {
		count++
	}
	if flagExportMarkdown {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one output format is required: --pdf, --json, or --markdown")
	}

	switch {
	case flagExportPDF:
		return render.NewPDFRenderer(), nil
	case flagExportJSON:
		return render.NewJSONRenderer(), nil
	default:
		return render.NewMarkdownRenderer(), nil
	}
}
