// Package coretest provides a deterministic in-memory PageSource for
// testing the crawler and pipeline without any network.
package coretest

import (
	"context"
	"fmt"

	"github.com/yooung1/sonntag/core"
)

// Page is the scripted content of one fake URL.
type Page struct {
	// Links maps a CSS selector to the entries FindLinks returns for it.
	Links map[string][]core.NavEntry
	// Headings is what ExtractHeadings returns on this page.
	Headings core.HeadingSequence
}

// FakeSource is a scripted PageSource. Navigating to a URL missing from
// Pages, or listed in Fail, returns an error.
type FakeSource struct {
	Pages map[string]Page
	Fail  map[string]bool

	// Visited records every URL passed to Navigate, in order.
	Visited []string
	// Closed counts Close calls; Close is idempotent by contract.
	Closed int

	current string
}

// Navigate switches the fake to the scripted page for url.
func (f *FakeSource) Navigate(_ context.Context, url string) error {
	f.Visited = append(f.Visited, url)
	if f.Fail[url] {
		return fmt.Errorf("fake: page %s set to fail", url)
	}
	if _, ok := f.Pages[url]; !ok {
		return fmt.Errorf("fake: no page scripted for %s", url)
	}
	f.current = url
	return nil
}

// WaitForReady succeeds when the current page scripts the selector.
func (f *FakeSource) WaitForReady(_ context.Context, selector string) error {
	if _, ok := f.Pages[f.current].Links[selector]; !ok {
		return &core.TimeoutError{Selector: selector}
	}
	return nil
}

// FindLinks returns the scripted entries for the selector on the current page.
func (f *FakeSource) FindLinks(selector string) ([]core.NavEntry, error) {
	return f.Pages[f.current].Links[selector], nil
}

// Click follows the first scripted link for the selector.
func (f *FakeSource) Click(ctx context.Context, selector string) error {
	return f.ClickNth(ctx, selector, 0)
}

// ClickNth follows the nth scripted link for the selector.
func (f *FakeSource) ClickNth(ctx context.Context, selector string, index int) error {
	links := f.Pages[f.current].Links[selector]
	if index < 0 || index >= len(links) {
		return fmt.Errorf("fake: no link %d for selector %q on %s", index, selector, f.current)
	}
	return f.Navigate(ctx, links[index].URL)
}

// ExtractHeadings returns the scripted headings of the current page.
func (f *FakeSource) ExtractHeadings() (core.HeadingSequence, error) {
	return f.Pages[f.current].Headings, nil
}

// Close records the release of the session.
func (f *FakeSource) Close() error {
	f.Closed++
	return nil
}
