// Package render converts a program record into its export formats: a
// printable PDF assignment sheet, JSON, and Markdown.
package render

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/yooung1/sonntag/core"
)

// Column widths in mm for the assignment table.
const (
	partColWidth = 120
	nameColWidth = 60
)

// sectionColor picks the band color for a section title. The palette
// mirrors the three canonical sections; anything else gets gray.
func sectionColor(title string) (r, g, b int) {
	upper := strings.ToUpper(title)
	switch {
	case strings.Contains(upper, "TESOROS"):
		return 0x6c, 0x5c, 0xe7
	case strings.Contains(upper, "MAESTROS"):
		return 0xf1, 0xc4, 0x0f
	case strings.Contains(upper, "VIDA"):
		return 0xe7, 0x4c, 0x3c
	default:
		return 0x7f, 0x8c, 0x8d
	}
}

// PDFRenderer renders a record as an A4 assignment sheet: header with the
// week's metadata, one table per section, and the conclusion line.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render produces the PDF bytes for one record.
func (r *PDFRenderer) Render(rec core.ProgramRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; translate so the Spanish accents survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0x2c, 0x3e, 0x50)
	pdf.MultiCell(0, 8, tr("Designaciones: Semana de "+rec.Metadata.WeekLabel), "", "L", false)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	subtitle := "Lectura: " + rec.Metadata.ScriptureReading + " | " + rec.Metadata.IntroductionText
	pdf.MultiCell(0, 6, tr(subtitle), "", "L", false)
	pdf.Ln(4)

	for _, section := range rec.Sections {
		renderSection(pdf, tr, section)
	}

	if rec.Conclusion != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 6, tr("Conclusión: "+rec.Conclusion), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderSection draws a colored title band and the part/assignee table.
func renderSection(pdf *gofpdf.Fpdf, tr func(string) string, section core.Section) {
	cr, cg, cb := sectionColor(section.Title)
	pdf.SetFillColor(cr, cg, cb)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 8, tr(section.Title), "", "L", true)

	// Table header.
	pdf.SetFillColor(230, 230, 230)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(partColWidth, 7, tr("Parte"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(nameColWidth, 7, tr("Asignado / Ayudante"), "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range section.Items {
		assignee := item.Name
		if item.Helper != "" {
			assignee += " / " + item.Helper
		}
		if strings.TrimSpace(assignee) == "" {
			assignee = "__________________"
		}
		pdf.CellFormat(partColWidth, 7, tr(item.Part), "1", 0, "L", false, 0, "")
		pdf.CellFormat(nameColWidth, 7, tr(assignee), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(5)
}
