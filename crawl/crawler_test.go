package crawl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yooung1/sonntag/core"
	"github.com/yooung1/sonntag/core/coretest"
)

func TestCrawler_CollectInOrder(t *testing.T) {
	src := &coretest.FakeSource{
		Pages: map[string]coretest.Page{
			"https://x/w1": {Headings: core.HeadingSequence{"1-7 de enero", "juan 5"}},
			"https://x/w2": {Headings: core.HeadingSequence{"8-14 de enero", "juan 6"}},
		},
	}
	c := &Crawler{Source: src}

	got, err := c.Collect(context.Background(), []string{"https://x/w1", "https://x/w2"})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "1-7 de enero", got[0][0])
	assert.Equal(t, "8-14 de enero", got[1][0])
	assert.Equal(t, []string{"https://x/w1", "https://x/w2"}, src.Visited)
}

func TestCrawler_FailedPageAbortsCrawl(t *testing.T) {
	src := &coretest.FakeSource{
		Pages: map[string]coretest.Page{
			"https://x/w1": {Headings: core.HeadingSequence{"1-7 de enero"}},
		},
		Fail: map[string]bool{"https://x/w2": true},
	}
	c := &Crawler{Source: src}

	got, err := c.Collect(context.Background(), []string{"https://x/w1", "https://x/w2"})

	require.Error(t, err)
	var navErr *core.NavigationError
	assert.ErrorAs(t, err, &navErr)
	assert.Nil(t, got, "partial results are discarded")
}

func TestCrawler_NoURLs(t *testing.T) {
	c := &Crawler{Source: &coretest.FakeSource{}}

	got, err := c.Collect(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
