package pipeline

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yooung1/sonntag/config"
	"github.com/yooung1/sonntag/core"
	"github.com/yooung1/sonntag/core/coretest"
	"github.com/yooung1/sonntag/core/history"
)

// June 5th 2024 is a Wednesday; its window is Mon Jun 3 - Sun Jun 9, so
// the match string is "3-9 de junio".
var testNow = func() time.Time {
	return time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC)
}

func weekHeadings(label string) core.HeadingSequence {
	return core.HeadingSequence{
		label,
		"juan 5",
		"Canción 3 y oración",
		"TESOROS DE LA BIBLIA",
		"Discurso (10 mins.)",
		"SEAMOS MEJORES MAESTROS",
		"Empiece conversaciones (3 mins.)",
		"NUESTRA VIDA CRISTIANA",
		"Estudio bíblico de la congregación (30 mins.)",
		"Palabras de conclusión (3 mins.)",
	}
}

func newRunner(t *testing.T, src *coretest.FakeSource) (*Runner, *history.FileStore) {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	store := history.NewFileStore(cfg.HistoryPath())
	return &Runner{
		Cfg:       cfg,
		NewSource: func() (core.PageSource, error) { return src, nil },
		Store:     store,
		Now:       testNow,
	}, store
}

func weekModeSource() *coretest.FakeSource {
	cfg := config.Default()
	return &coretest.FakeSource{
		Pages: map[string]coretest.Page{
			cfg.HomeURL(): {
				Links: map[string][]core.NavEntry{
					cfg.Selectors.TodayMenu: {{Text: "Hoy", URL: "https://wol.jw.org/hoy"}},
				},
			},
			"https://wol.jw.org/hoy": {
				Links: map[string][]core.NavEntry{
					cfg.Selectors.TodayWeeks: {
						{Text: "REUNIÓN PÚBLICA", URL: "https://wol.jw.org/publica"},
						{Text: "3-9 DE JUNIO", URL: "https://wol.jw.org/semana/23"},
					},
				},
			},
			"https://wol.jw.org/semana/23": {Headings: weekHeadings("3-9 de junio")},
		},
	}
}

func TestExtractWeek_SavesOneRecord(t *testing.T) {
	src := weekModeSource()
	runner, store := newRunner(t, src)

	records, err := runner.ExtractWeek(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "3-9 de junio", records[0].Metadata.WeekLabel)
	require.Len(t, records[0].Sections, 3)
	assert.Equal(t, "Palabras de conclusión (3 mins.)", records[0].Conclusion)

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, saved, 1)

	assert.GreaterOrEqual(t, src.Closed, 1, "session released after the run")
}

func TestExtractWeek_CurrentWeekNotListed(t *testing.T) {
	src := weekModeSource()
	// Rewrite the panel so no entry matches the current week.
	page := src.Pages["https://wol.jw.org/hoy"]
	page.Links[config.Default().Selectors.TodayWeeks] = []core.NavEntry{
		{Text: "10-16 DE JUNIO", URL: "https://wol.jw.org/semana/24"},
	}

	runner, store := newRunner(t, src)
	records, err := runner.ExtractWeek(context.Background())

	require.NoError(t, err, "not found is a normal empty outcome")
	assert.Empty(t, records)

	saved, _ := store.Load()
	assert.Empty(t, saved, "nothing persisted")
	assert.GreaterOrEqual(t, src.Closed, 1)
}

func monthModeSource() *coretest.FakeSource {
	cfg := config.Default()
	return &coretest.FakeSource{
		Pages: map[string]coretest.Page{
			cfg.MonthURL(2024, "JUNIO"): {
				Links: map[string][]core.NavEntry{
					cfg.Selectors.WeekCards: {
						{Text: "27 DE MAYO A 2 DE JUNIO", URL: "/semana/22"},
						{Text: "3-9 DE JUNIO", URL: "/semana/23"},
						{Text: "10-16 DE JUNIO", URL: "/semana/24"},
					},
				},
			},
			"https://wol.jw.org/semana/23": {Headings: weekHeadings("3-9 de junio")},
			"https://wol.jw.org/semana/24": {Headings: weekHeadings("10-16 de junio")},
		},
	}
}

func TestExtractMonth_FromCurrentWeekOnward(t *testing.T) {
	src := monthModeSource()
	runner, store := newRunner(t, src)

	records, err := runner.ExtractMonth(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "3-9 de junio", records[0].Metadata.WeekLabel)
	assert.Equal(t, "10-16 de junio", records[1].Metadata.WeekLabel)

	assert.NotContains(t, src.Visited, "https://wol.jw.org/semana/22",
		"entries before the match are never visited")

	saved, _ := store.Load()
	assert.Len(t, saved, 2)
}

func TestExtractMonth_RerunDoesNotDuplicateHistory(t *testing.T) {
	runner, store := newRunner(t, monthModeSource())

	_, err := runner.ExtractMonth(context.Background())
	require.NoError(t, err)
	_, err = runner.ExtractMonth(context.Background())
	require.NoError(t, err)

	saved, _ := store.Load()
	assert.Len(t, saved, 2, "records are unique by week label")
}

func TestExtractMonth_PageFailureYieldsZeroRecords(t *testing.T) {
	src := monthModeSource()
	src.Fail = map[string]bool{"https://wol.jw.org/semana/24": true}

	runner, store := newRunner(t, src)
	records, err := runner.ExtractMonth(context.Background())

	require.NoError(t, err, "page failures are recovered at the run boundary")
	assert.Empty(t, records, "partial results are discarded")

	saved, _ := store.Load()
	assert.Empty(t, saved)
	assert.GreaterOrEqual(t, src.Closed, 1, "session released on the failure path")
}

func allModeSource() *coretest.FakeSource {
	cfg := config.Default()
	return &coretest.FakeSource{
		Pages: map[string]coretest.Page{
			cfg.YearURL(2024): {
				Links: map[string][]core.NavEntry{
					cfg.Selectors.PeriodCards: {
						{Text: "Junio", URL: cfg.MonthURL(2024, "JUNIO")},
						{Text: "Julio", URL: cfg.MonthURL(2024, "JULIO")},
					},
				},
			},
			cfg.MonthURL(2024, "JUNIO"): {
				Links: map[string][]core.NavEntry{
					cfg.Selectors.WeekCards: {
						{Text: "27 DE MAYO A 2 DE JUNIO", URL: "/semana/22"},
						{Text: "3-9 DE JUNIO", URL: "/semana/23"},
					},
				},
			},
			cfg.MonthURL(2024, "JULIO"): {
				Links: map[string][]core.NavEntry{
					cfg.Selectors.WeekCards: {
						{Text: "1-7 DE JULIO", URL: "/semana/27"},
					},
				},
			},
			"https://wol.jw.org/semana/23": {Headings: weekHeadings("3-9 de junio")},
			"https://wol.jw.org/semana/27": {Headings: weekHeadings("1-7 de julio")},
		},
	}
}

func TestExtractAll_LatchesAcrossPeriodPages(t *testing.T) {
	runner, store := newRunner(t, allModeSource())

	records, err := runner.ExtractAll(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "3-9 de junio", records[0].Metadata.WeekLabel)
	assert.Equal(t, "1-7 de julio", records[1].Metadata.WeekLabel,
		"later period pages are included without re-matching")

	saved, _ := store.Load()
	assert.Len(t, saved, 2)
}

func TestExtractAll_NeverMatchedIsEmpty(t *testing.T) {
	src := allModeSource()
	// Replace the June card list so the current week never appears.
	cfg := config.Default()
	june := src.Pages[cfg.MonthURL(2024, "JUNIO")]
	june.Links[cfg.Selectors.WeekCards] = []core.NavEntry{
		{Text: "27 DE MAYO A 2 DE JUNIO", URL: "/semana/22"},
	}
	july := src.Pages[cfg.MonthURL(2024, "JULIO")]
	july.Links[cfg.Selectors.WeekCards] = nil

	runner, _ := newRunner(t, src)
	records, err := runner.ExtractAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

type failingStore struct{}

func (failingStore) Load() ([]core.ProgramRecord, error) { return nil, nil }
func (failingStore) Save([]core.ProgramRecord) error {
	return fmt.Errorf("disk full")
}

func TestRun_SaveFailureSurfacesButKeepsRecords(t *testing.T) {
	src := weekModeSource()
	runner := &Runner{
		Cfg:       config.Default(),
		NewSource: func() (core.PageSource, error) { return src, nil },
		Store:     failingStore{},
		Now:       testNow,
	}

	records, err := runner.ExtractWeek(context.Background())

	require.Error(t, err)
	assert.Len(t, records, 1, "extracted records stay in memory for the caller")
}
