package app

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// writePDF renders the anchored document blocks as a simple PDF, one heading
// per block followed by its body slice. Layout is intentionally minimal; the
// PDF exists for reading, not typography.
func writePDF(path string, res Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the translator keeps Portuguese accents legible.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("Documentos extraídos"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(2)

	for _, it := range res.BodyItems {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", it.OrderIndex, it.OrgText)), "", "L", false)
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 5, tr(it.DocTitle), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		for _, line := range strings.Split(strings.TrimSpace(it.SliceText), "\n") {
			s := strings.TrimSpace(line)
			if s == "" {
				pdf.Ln(3)
				continue
			}
			pdf.MultiCell(0, 5, tr(s), "", "L", false)
		}
		pdf.Ln(6)
	}

	return pdf.OutputFileAndClose(path)
}
