// Package core defines the shared types and interfaces for sonntag.
// Each stage of the extraction pipeline is a clean, testable interface.
package core

import (
	"context"
	"time"
)

// WeekWindow is the Monday-Sunday calendar range treated as "this week",
// plus the lowercase label used to find the week in site navigation.
type WeekWindow struct {
	Monday time.Time
	Sunday time.Time
	// Label is the match string, e.g. "1-7 de enero" or
	// "29 de enero a 4 de febrero" for a window spanning two months.
	Label string
}

// NavEntry is one navigation link on a page: its visible text and target URL.
type NavEntry struct {
	Text string
	URL  string
}

// HeadingSequence is one page's heading text in document order.
type HeadingSequence []string

// Metadata holds the positional header fields of a program page.
type Metadata struct {
	WeekLabel        string `json:"week_label"`
	ScriptureReading string `json:"scripture_reading"`
	IntroductionText string `json:"introduction_text"`
}

// Assignment is one part of a section, optionally carrying the people
// assigned to it. The extractor only ever fills Part; names are added
// later by editing the saved record.
type Assignment struct {
	Part   string `json:"part"`
	Name   string `json:"name,omitempty"`
	Helper string `json:"helper,omitempty"`
}

// Section is one titled block of a program and its parts in source order.
type Section struct {
	Title string       `json:"title"`
	Items []Assignment `json:"items"`
}

// ProgramRecord is the structured result of parsing one page.
type ProgramRecord struct {
	Metadata   Metadata  `json:"metadata"`
	Sections   []Section `json:"sections"`
	Conclusion string    `json:"conclusion,omitempty"`
}

// PageSource is the capability to drive a browsing session: navigate to
// URLs, wait for content, enumerate links, and read headings. A single
// PageSource is a stateful resource; it must not be shared between
// concurrent pipeline runs.
type PageSource interface {
	Navigate(ctx context.Context, url string) error
	// WaitForReady blocks until at least one element matches the selector
	// on the current page, or fails with a TimeoutError.
	WaitForReady(ctx context.Context, selector string) error
	FindLinks(selector string) ([]NavEntry, error)
	// Click follows the target of the first element matching the selector.
	Click(ctx context.Context, selector string) error
	// ClickNth follows the target of the nth link matching the selector.
	ClickNth(ctx context.Context, selector string, index int) error
	// ExtractHeadings returns the visible text of every heading element
	// on the current page in document order.
	ExtractHeadings() (HeadingSequence, error)
	// Close releases the session. Safe to call after a failure, and more
	// than once.
	Close() error
}

// SourceFactory opens a fresh PageSource for one pipeline run.
type SourceFactory func() (PageSource, error)

// Store persists the history of extracted program records.
type Store interface {
	Load() ([]ProgramRecord, error)
	Save(records []ProgramRecord) error
}

// Renderer converts a ProgramRecord into a final output format.
type Renderer interface {
	Render(rec ProgramRecord) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".pdf").
	Extension() string
}
