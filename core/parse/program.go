package parse

import (
	"strings"
	"unicode"

	"github.com/yooung1/sonntag/core"
)

// Program parses one page's headings into a record. The second return is
// false when the page is rejected: fewer than four headings after
// boilerplate removal, or a first heading without a digit (a valid week
// page always starts with a date string). Rejection is a normal outcome,
// not an error.
//
// The first three accepted headings are positional metadata. The rest run
// through a single left-to-right pass: a conclusion marker closes any open
// section, a canonical title opens a new one, and plain text joins the
// open section or is dropped when none is open.
func Program(headings core.HeadingSequence) (core.ProgramRecord, bool) {
	items := make([]string, 0, len(headings))
	for _, h := range headings {
		if classify(h) != kindBoilerplate {
			items = append(items, h)
		}
	}

	if len(items) < 4 {
		return core.ProgramRecord{}, false
	}
	if !strings.ContainsFunc(items[0], unicode.IsDigit) {
		return core.ProgramRecord{}, false
	}

	rec := core.ProgramRecord{
		Metadata: core.Metadata{
			WeekLabel:        items[0],
			ScriptureReading: items[1],
			IntroductionText: items[2],
		},
	}

	// cur indexes the open section in rec.Sections; -1 means none open.
	cur := -1
	for _, h := range items[3:] {
		switch classify(h) {
		case kindConclusion:
			rec.Conclusion = h
			cur = -1
		case kindSectionTitle:
			rec.Sections = append(rec.Sections, core.Section{Title: h})
			cur = len(rec.Sections) - 1
		case kindText:
			if cur >= 0 {
				rec.Sections[cur].Items = append(rec.Sections[cur].Items,
					core.Assignment{Part: h})
			}
		}
	}

	return rec, true
}

// Programs applies Program to every page's heading sequence, keeping one
// record per accepted page in source order. Rejected pages contribute
// nothing.
func Programs(sequences []core.HeadingSequence) []core.ProgramRecord {
	var records []core.ProgramRecord
	for _, headings := range sequences {
		if rec, ok := Program(headings); ok {
			records = append(records, rec)
		}
	}
	return records
}
