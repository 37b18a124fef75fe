package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// Line is one label/value pair of a detail export.
type Line struct {
	Label string
	Value string
}

// PDFGenerator renders a detail screen as a one-page fiche. Core fonts
// cover the French character set through the cp1252 translator.
type PDFGenerator struct{}

func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

func (g *PDFGenerator) Generate(title string, lines []Line) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range lines {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(70, 7, tr(line.Label), "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(line.Value), "B", 1, "L", false, 0, "")
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
