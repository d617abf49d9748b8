package crawl

import (
	"net/url"

	"github.com/yooung1/sonntag/core"
)

// FromMatch implements the horizon policy over one period page's entries:
// before the match has been seen, entries are skipped; from the first entry
// whose text contains match (lowercased substring) onward, every entry's
// URL is included, resolved against base.
//
// The found flag is the latch carried across period pages. Pass the value
// returned by the previous page's call; once true it stays true, so later
// pages contribute all of their entries without re-matching. The returned
// URLs preserve entry order.
func FromMatch(entries []core.NavEntry, match string, base *url.URL, found bool) ([]string, bool) {
	var urls []string
	for _, e := range entries {
		if !found {
			if _, ok := Locate([]core.NavEntry{e}, match); !ok {
				continue
			}
			found = true
		}
		if u := ResolveURL(e.URL, base); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, found
}
