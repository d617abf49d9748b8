// Package pipeline wires the extraction stages together: compute the week
// window, locate and crawl the right pages, parse each page into a program
// record, and merge the results into history.
//
// A run owns one PageSource for its whole duration and releases it on
// every exit path. Page failures abort the run and yield zero records (a
// partial crawl is discarded, never persisted); only configuration and
// persistence failures surface as errors.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/yooung1/sonntag/config"
	"github.com/yooung1/sonntag/core"
	"github.com/yooung1/sonntag/core/history"
	"github.com/yooung1/sonntag/core/parse"
	"github.com/yooung1/sonntag/core/week"
	"github.com/yooung1/sonntag/crawl"
	"github.com/yooung1/sonntag/internal/logutil"
)

// Runner executes extraction runs against one configured site.
type Runner struct {
	Cfg       *config.Config
	NewSource core.SourceFactory
	Store     core.Store

	// Now is the clock used to compute the current week window. Defaults
	// to time.Now; tests pin it.
	Now func() time.Time
}

// collectFunc gathers the heading sequences for one extraction mode.
type collectFunc func(ctx context.Context, src core.PageSource, window core.WeekWindow) ([]core.HeadingSequence, error)

// ExtractWeek extracts this week's program from the page already linked on
// the home panel. At most one record results.
func (r *Runner) ExtractWeek(ctx context.Context) ([]core.ProgramRecord, error) {
	return r.run(ctx, r.collectWeek)
}

// ExtractMonth extracts every program from the current week to the end of
// the current month's guide page.
func (r *Runner) ExtractMonth(ctx context.Context) ([]core.ProgramRecord, error) {
	return r.run(ctx, r.collectMonth)
}

// ExtractAll extracts every program from the current week onward across
// all period pages of the yearly index.
func (r *Runner) ExtractAll(ctx context.Context) ([]core.ProgramRecord, error) {
	return r.run(ctx, r.collectAll)
}

// run executes one extraction: acquire a session, collect headings, parse,
// and persist. The returned records are the ones newly extracted in this
// run; a non-nil error means persistence or configuration failed, not that
// the site had nothing for us.
func (r *Runner) run(ctx context.Context, collect collectFunc) ([]core.ProgramRecord, error) {
	window := week.ComputeWindow(r.now())
	logutil.Log.WithField("week", window.Label).Debug("starting extraction run")

	src, err := r.NewSource()
	if err != nil {
		return nil, fmt.Errorf("opening page source: %w", err)
	}
	defer src.Close()

	sequences, err := collect(ctx, src, window)
	if err != nil {
		var cfgErr *core.ConfigurationError
		if errors.As(err, &cfgErr) {
			return nil, err
		}
		// Page-level failures are recovered here: the run reports zero
		// records instead of crashing, and nothing partial is saved.
		logutil.Log.WithError(err).Error("extraction aborted, discarding partial results")
		return nil, nil
	}

	records := parse.Programs(sequences)
	if len(records) == 0 {
		logutil.Log.WithField("week", window.Label).Info("no programs extracted")
		return nil, nil
	}

	existing, err := r.Store.Load()
	if err != nil {
		return records, fmt.Errorf("loading history: %w", err)
	}
	if err := r.Store.Save(history.Merge(existing, records)); err != nil {
		// The extracted records are still returned so the caller can
		// retry or notify; they are just not persisted.
		return records, fmt.Errorf("saving history: %w", err)
	}

	logutil.Log.WithField("records", len(records)).Info("extraction run saved")
	return records, nil
}

// collectWeek follows the home page's weekly panel to this week's page.
func (r *Runner) collectWeek(ctx context.Context, src core.PageSource, window core.WeekWindow) ([]core.HeadingSequence, error) {
	if err := src.Navigate(ctx, r.Cfg.HomeURL()); err != nil {
		return nil, &core.NavigationError{URL: r.Cfg.HomeURL(), Err: err}
	}
	if err := src.Click(ctx, r.Cfg.Selectors.TodayMenu); err != nil {
		return nil, fmt.Errorf("opening weekly panel: %w", err)
	}
	if err := src.WaitForReady(ctx, r.Cfg.Selectors.TodayWeeks); err != nil {
		return nil, err
	}

	entries, err := src.FindLinks(r.Cfg.Selectors.TodayWeeks)
	if err != nil {
		return nil, err
	}
	idx, ok := crawl.Locate(entries, window.Label)
	if !ok {
		logutil.Log.WithField("week", window.Label).Info("current week not listed")
		return nil, nil
	}

	if err := src.ClickNth(ctx, r.Cfg.Selectors.TodayWeeks, idx); err != nil {
		return nil, fmt.Errorf("opening week page: %w", err)
	}
	headings, err := src.ExtractHeadings()
	if err != nil {
		return nil, err
	}
	return []core.HeadingSequence{headings}, nil
}

// collectMonth horizon-crawls the current month's guide page from the
// current week's entry onward.
func (r *Runner) collectMonth(ctx context.Context, src core.PageSource, window core.WeekWindow) ([]core.HeadingSequence, error) {
	now := r.now()
	monthName, err := week.MonthName(now.Month())
	if err != nil {
		return nil, err
	}

	monthURL := r.Cfg.MonthURL(now.Year(), monthName)
	if err := src.Navigate(ctx, monthURL); err != nil {
		return nil, &core.NavigationError{URL: monthURL, Err: err}
	}

	entries, err := src.FindLinks(r.Cfg.Selectors.WeekCards)
	if err != nil {
		return nil, err
	}

	urls, found := crawl.FromMatch(entries, window.Label, r.base(), false)
	if !found {
		logutil.Log.WithField("week", window.Label).Info("current week not found on month page")
		return nil, nil
	}

	c := &crawl.Crawler{Source: src}
	return c.Collect(ctx, urls)
}

// collectAll walks every period page of the yearly index, latching on the
// first entry matching the current week and taking everything after it.
func (r *Runner) collectAll(ctx context.Context, src core.PageSource, window core.WeekWindow) ([]core.HeadingSequence, error) {
	yearURL := r.Cfg.YearURL(r.now().Year())
	if err := src.Navigate(ctx, yearURL); err != nil {
		return nil, &core.NavigationError{URL: yearURL, Err: err}
	}
	if err := src.WaitForReady(ctx, r.Cfg.Selectors.PeriodCards); err != nil {
		return nil, err
	}

	periods, err := src.FindLinks(r.Cfg.Selectors.PeriodCards)
	if err != nil {
		return nil, err
	}

	var urls []string
	found := false
	for _, period := range periods {
		periodURL := crawl.ResolveURL(period.URL, r.base())
		if periodURL == "" {
			continue
		}
		if err := src.Navigate(ctx, periodURL); err != nil {
			return nil, &core.NavigationError{URL: periodURL, Err: err}
		}

		entries, err := src.FindLinks(r.Cfg.Selectors.WeekCards)
		if err != nil {
			return nil, err
		}

		var pageURLs []string
		pageURLs, found = crawl.FromMatch(entries, window.Label, r.base(), found)
		urls = append(urls, pageURLs...)
	}

	if !found {
		logutil.Log.WithField("week", window.Label).Info("current week not found in any period page")
		return nil, nil
	}

	c := &crawl.Crawler{Source: src}
	return c.Collect(ctx, urls)
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Runner) base() *url.URL {
	u, err := url.Parse(r.Cfg.BaseURL)
	if err != nil {
		return nil
	}
	return u
}
