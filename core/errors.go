package core

import (
	"errors"
	"fmt"
)

// ErrTimeout reports that a page did not become ready within the bound.
// Wrapped by TimeoutError; check with errors.Is.
var ErrTimeout = errors.New("timed out waiting for page")

// NavigationError reports a failure to load a page. The pipeline treats it
// as fatal for the current run: the run aborts and yields zero records.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigating to %s: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// TimeoutError reports that a readiness condition was not met in time.
type TimeoutError struct {
	Selector string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out waiting for %q", e.Selector)
}

func (e *TimeoutError) Unwrap() error { return ErrTimeout }

// ConfigurationError reports an invalid or incomplete static table, such
// as a month number outside the locale table. It cannot be recovered from.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Detail
}
