// Package config loads the extractor's settings from a YAML file, falling
// back to the site's known defaults when no file exists. Everything that
// names the source site lives here: base URL, library paths, and the CSS
// selectors its navigation uses.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Selectors are the CSS selectors used to walk the site's navigation.
type Selectors struct {
	// TodayMenu opens the weekly panel from the home page.
	TodayMenu string `yaml:"today_menu"`
	// TodayWeeks lists the week cards inside the weekly panel.
	TodayWeeks string `yaml:"today_weeks"`
	// WeekCards lists the week links on a month's guide page.
	WeekCards string `yaml:"week_cards"`
	// PeriodCards lists the month links on the yearly index.
	PeriodCards string `yaml:"period_cards"`
}

// Config is the full configuration for one extraction run.
type Config struct {
	BaseURL     string    `yaml:"base_url"`
	HomePath    string    `yaml:"home_path"`
	LibraryPath string    `yaml:"library_path"`
	Selectors   Selectors `yaml:"selectors"`

	// HTTPTimeoutSeconds bounds one page fetch.
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds"`

	// DataDir is where history JSON and exported PDFs live.
	DataDir string `yaml:"data_dir"`
}

// Default returns the configuration for the site the extractor was built
// around.
func Default() *Config {
	return &Config{
		BaseURL:     "https://wol.jw.org",
		HomePath:    "/es/wol/h/r4/lp-s",
		LibraryPath: "/es/wol/library/r4/lp-s/biblioteca/guía-de-actividades",
		Selectors: Selectors{
			TodayMenu:   "#menuToday",
			TodayWeeks:  "ul.directory.navCard li.todayItem a.cardContainer",
			WeekCards:   "#materialNav nav ul li a.cardContainer",
			PeriodCards: "ul.directory.navCard li.row.card a.cardContainer",
		},
		HTTPTimeoutSeconds: 30,
		DataDir:            ".",
	}
}

// Load reads the config file at path, overlaying it on the defaults. A
// missing file is not an error: the defaults apply. An existing file that
// cannot be parsed is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// HTTPTimeout returns the page fetch timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// HomeURL is the site's landing page.
func (c *Config) HomeURL() string {
	return c.BaseURL + c.HomePath
}

// YearURL is the yearly guide index for the given year.
func (c *Config) YearURL(year int) string {
	return fmt.Sprintf("%s%s/guía-de-actividades-%d", c.BaseURL, c.LibraryPath, year)
}

// MonthURL is the guide page for one month, addressed by its lowercase
// Spanish name.
func (c *Config) MonthURL(year int, monthName string) string {
	return c.YearURL(year) + "/" + strings.ToLower(monthName)
}

// HistoryPath is the history JSON document location.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "json", "saved_schedules.json")
}

// PDFDir is where exported PDFs are written.
func (c *Config) PDFDir() string {
	return filepath.Join(c.DataDir, "pdf")
}
