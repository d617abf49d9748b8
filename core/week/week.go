// Package week computes the Monday-Sunday window for a given date and the
// lowercase Spanish label used to find that week in site navigation.
//
// The label template must match the site's own formatting exactly, since
// the locator works by substring: "1-7 de enero" when the window stays in
// one month, "29 de enero a 4 de febrero" when it rolls over.
package week

import (
	"fmt"
	"strings"
	"time"

	"github.com/yooung1/sonntag/core"
)

// months maps month numbers to their Spanish names. Uppercase like the
// source site prints them; labels are lowercased as a whole.
var months = map[time.Month]string{
	time.January:   "ENERO",
	time.February:  "FEBRERO",
	time.March:     "MARZO",
	time.April:     "ABRIL",
	time.May:       "MAYO",
	time.June:      "JUNIO",
	time.July:      "JULIO",
	time.August:    "AGOSTO",
	time.September: "SEPTIEMBRE",
	time.October:   "OCTUBRE",
	time.November:  "NOVIEMBRE",
	time.December:  "DICIEMBRE",
}

// MonthName returns the Spanish name for a month number (1-12).
func MonthName(m time.Month) (string, error) {
	name, ok := months[m]
	if !ok {
		return "", &core.ConfigurationError{Detail: fmt.Sprintf("no month name for %d", m)}
	}
	return name, nil
}

// ComputeWindow returns the week window containing now. Only the calendar
// date matters; time of day and zone offset within the day are ignored.
// The window is recomputed on every call, never cached.
func ComputeWindow(now time.Time) core.WeekWindow {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)

	return core.WeekWindow{
		Monday: monday,
		Sunday: sunday,
		Label:  label(monday, sunday),
	}
}

// label formats the navigation match string for a window.
func label(monday, sunday time.Time) string {
	if monday.Month() == sunday.Month() {
		return strings.ToLower(fmt.Sprintf("%d-%d DE %s",
			monday.Day(), sunday.Day(), months[monday.Month()]))
	}
	return strings.ToLower(fmt.Sprintf("%d DE %s A %d DE %s",
		monday.Day(), months[monday.Month()],
		sunday.Day(), months[sunday.Month()]))
}
