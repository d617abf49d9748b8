// Package parse turns one page's flat heading sequence into a structured
// program record. Classification of each heading is separated from the
// state machine that consumes it, so the transitions stay free of string
// matching.
package parse

import "strings"

// kind tags a heading after classification.
type kind int

const (
	// kindBoilerplate is site chrome, removed before parsing.
	kindBoilerplate kind = iota
	// kindConclusion carries the closing-words marker.
	kindConclusion
	// kindSectionTitle is one of the canonical section titles.
	kindSectionTitle
	// kindText is any other heading; an item when a section is open.
	kindText
)

// boilerplate headings are site chrome that must never be treated as
// content. Matched exactly as the site prints them.
var boilerplate = map[string]bool{
	"Configuración de privacidad": true,
	"Guía de actividades...":      true,
}

// sectionTitles is the closed set of canonical section titles.
var sectionTitles = []string{
	"TESOROS DE LA BIBLIA",
	"SEAMOS MEJORES MAESTROS",
	"NUESTRA VIDA CRISTIANA",
}

// conclusionMarker flags the closing-words heading, matched as a
// substring since the site appends the speaker's timing to it.
const conclusionMarker = "palabras de conclusión"

// classify tags a single heading. Title and marker comparisons are
// case-insensitive so small changes in the site's capitalization do not
// break parsing; boilerplate stays exact.
func classify(heading string) kind {
	if boilerplate[heading] {
		return kindBoilerplate
	}
	if strings.Contains(strings.ToLower(heading), conclusionMarker) {
		return kindConclusion
	}
	for _, title := range sectionTitles {
		if strings.EqualFold(heading, title) {
			return kindSectionTitle
		}
	}
	return kindText
}
