package render

import (
	"strings"

	"github.com/yooung1/sonntag/core"
)

// MarkdownRenderer writes a record as a readable Markdown outline, handy
// for sharing a week's program in chat or mail.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render builds the Markdown document for one record.
func (r *MarkdownRenderer) Render(rec core.ProgramRecord) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# " + rec.Metadata.WeekLabel + "\n\n")
	b.WriteString("**Lectura:** " + rec.Metadata.ScriptureReading + "  \n")
	b.WriteString(rec.Metadata.IntroductionText + "\n")

	for _, section := range rec.Sections {
		b.WriteString("\n## " + section.Title + "\n\n")
		for _, item := range section.Items {
			b.WriteString("- " + item.Part)
			if item.Name != "" {
				b.WriteString(" — " + item.Name)
				if item.Helper != "" {
					b.WriteString(" / " + item.Helper)
				}
			}
			b.WriteString("\n")
		}
	}

	if rec.Conclusion != "" {
		b.WriteString("\n" + rec.Conclusion + "\n")
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
