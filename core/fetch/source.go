// Package fetch implements PageSource over plain HTTP. It stands in for
// the browser the schedule site is normally read with: navigation fetches
// and parses a document, readiness is checked by polling for a selector,
// and "clicking" a link follows its href.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/yooung1/sonntag/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "sonntag/1.0 (weekly schedule extractor)"
)

// HTTPSource drives pages over HTTP with bounded retries. It holds one
// current document at a time and is not safe for concurrent use; each
// pipeline run owns its own HTTPSource.
type HTTPSource struct {
	client       *http.Client
	pollInterval time.Duration
	pollAttempts int

	doc     *goquery.Document
	pageURL *url.URL
	closed  bool
}

// Option adjusts an HTTPSource.
type Option func(*HTTPSource)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *HTTPSource) { s.client.Timeout = d }
}

// WithPolling sets how often and how many times WaitForReady re-reads the
// page before giving up.
func WithPolling(interval time.Duration, attempts int) Option {
	return func(s *HTTPSource) {
		s.pollInterval = interval
		s.pollAttempts = attempts
	}
}

// New creates an HTTPSource with retrying transport and sane defaults.
func New(opts ...Option) *HTTPSource {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil

	s := &HTTPSource{
		client:       rc.StandardClient(),
		pollInterval: 500 * time.Millisecond,
		pollAttempts: 4,
	}
	s.client.Timeout = defaultTimeout

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Navigate fetches rawURL and makes it the current document.
func (s *HTTPSource) Navigate(ctx context.Context, rawURL string) error {
	if s.closed {
		return fmt.Errorf("session closed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", rawURL, err)
	}

	s.doc = doc
	s.pageURL, _ = url.Parse(rawURL)
	return nil
}

// WaitForReady polls the current page until the selector matches at least
// one element, re-fetching between attempts. Fails with a TimeoutError once
// the attempts are exhausted.
func (s *HTTPSource) WaitForReady(ctx context.Context, selector string) error {
	for attempt := 0; ; attempt++ {
		if s.doc != nil && s.doc.Find(selector).Length() > 0 {
			return nil
		}
		if attempt >= s.pollAttempts {
			return &core.TimeoutError{Selector: selector}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.pollInterval):
		}

		if s.pageURL != nil {
			if err := s.Navigate(ctx, s.pageURL.String()); err != nil {
				return err
			}
		}
	}
}

// FindLinks returns every element matching the selector as a NavEntry,
// with hrefs resolved to absolute URLs against the current page.
func (s *HTTPSource) FindLinks(selector string) ([]core.NavEntry, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("no page loaded")
	}

	var entries []core.NavEntry
	s.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		entries = append(entries, core.NavEntry{
			Text: strings.TrimSpace(sel.Text()),
			URL:  s.resolve(href),
		})
	})
	return entries, nil
}

// Click follows the first link matching the selector.
func (s *HTTPSource) Click(ctx context.Context, selector string) error {
	return s.ClickNth(ctx, selector, 0)
}

// ClickNth follows the nth link matching the selector.
func (s *HTTPSource) ClickNth(ctx context.Context, selector string, index int) error {
	links, err := s.FindLinks(selector)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(links) {
		return fmt.Errorf("no element %d for selector %q", index, selector)
	}
	return s.Navigate(ctx, links[index].URL)
}

// ExtractHeadings returns h1/h2/h3 text in document order, whitespace
// trimmed, exactly as the parser expects it.
func (s *HTTPSource) ExtractHeadings() (core.HeadingSequence, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("no page loaded")
	}

	var headings core.HeadingSequence
	s.doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		headings = append(headings, strings.TrimSpace(sel.Text()))
	})
	return headings, nil
}

// Close releases the session. Idempotent.
func (s *HTTPSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.doc = nil
	s.client.CloseIdleConnections()
	return nil
}

// resolve makes an href absolute against the current page URL.
func (s *HTTPSource) resolve(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if s.pageURL == nil {
		return href
	}
	resolved := s.pageURL.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
