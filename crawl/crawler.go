package crawl

import (
	"context"
	"fmt"

	"github.com/yooung1/sonntag/core"
)

// Crawler visits a sequence of page URLs through a PageSource and collects
// each page's heading sequence. Navigation is strictly sequential: the
// underlying session is a single stateful resource.
type Crawler struct {
	Source core.PageSource
}

// Collect navigates to each URL in order and gathers its headings. The
// first page that fails to load or read aborts the whole collection; the
// caller reports the run as "zero records" rather than keeping a partial
// result.
func (c *Crawler) Collect(ctx context.Context, urls []string) ([]core.HeadingSequence, error) {
	sequences := make([]core.HeadingSequence, 0, len(urls))
	for _, u := range urls {
		if err := c.Source.Navigate(ctx, u); err != nil {
			return nil, &core.NavigationError{URL: u, Err: err}
		}
		headings, err := c.Source.ExtractHeadings()
		if err != nil {
			return nil, fmt.Errorf("reading headings from %s: %w", u, err)
		}
		sequences = append(sequences, headings)
	}
	return sequences, nil
}
