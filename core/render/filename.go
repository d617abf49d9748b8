package render

import "strings"

// Filename builds the export file name for a record's week label, e.g.
// "Designacion_3-9_de_junio.pdf".
func Filename(weekLabel, ext string) string {
	return "Designacion_" + strings.ReplaceAll(weekLabel, " ", "_") + ext
}
