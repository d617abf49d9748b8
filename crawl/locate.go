// Package crawl implements week location and the horizon traversal: find
// the navigation entry for the current week, then take that entry and
// everything after it across the remaining period pages.
package crawl

import (
	"net/url"
	"strings"

	"github.com/yooung1/sonntag/core"
)

// Locate returns the index of the first entry whose visible text contains
// match, comparing lowercased. The second return is false when no entry
// matches; callers treat that as "crawl nothing", not as a failure.
func Locate(entries []core.NavEntry, match string) (int, bool) {
	match = strings.ToLower(match)
	for i, e := range entries {
		if strings.Contains(strings.ToLower(e.Text), match) {
			return i, true
		}
	}
	return 0, false
}

// ResolveURL resolves a possibly relative href against a base URL. Returns
// "" for hrefs that cannot form a page URL (fragments, javascript:, bad
// parses).
func ResolveURL(href string, base *url.URL) string {
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil {
		return parsed.String()
	}

	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
