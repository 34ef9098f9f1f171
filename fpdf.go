package mdreport

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// fpdfBackend draws onto an A4 portrait gofpdf document.
type fpdfBackend struct {
	pdf *gofpdf.Fpdf
}

// NewFpdfBackend creates the default PDF backend. Every page carries
// headerText centered at the top and "Page N" centered at the bottom, both
// in small gray italics; pages break automatically at the bottom margin.
func NewFpdfBackend(headerText string) Backend {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageLeftMargin, pageLeftMargin, pageLeftMargin)
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, headerText, "", 0, "C", false, 0, "")
		pdf.Ln(10)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-bottomMargin)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.AddPage()
	return &fpdfBackend{pdf: pdf}
}

func (b *fpdfBackend) NewPage() {
	b.pdf.AddPage()
}

func (b *fpdfBackend) SetStyle(s Style) {
	b.pdf.SetFont(s.Family, s.Weight, s.Size)
	b.pdf.SetTextColor(s.Color.R, s.Color.G, s.Color.B)
}

func (b *fpdfBackend) SetFill(c RGB) {
	b.pdf.SetFillColor(c.R, c.G, c.B)
}

func (b *fpdfBackend) SetDraw(c RGB) {
	b.pdf.SetDrawColor(c.R, c.G, c.B)
}

func (b *fpdfBackend) WriteText(lineHt float64, text string) {
	b.pdf.MultiCell(0, lineHt, text, "", "L", false)
}

func (b *fpdfBackend) CellAt(w, h float64, text string, border, fill bool, align string, br bool) {
	borderStr := ""
	if border {
		borderStr = "1"
	}
	ln := 0
	if br {
		ln = 1
	}
	b.pdf.CellFormat(w, h, text, borderStr, ln, align, fill, 0, "")
}

func (b *fpdfBackend) DrawLine(x1, y1, x2, y2 float64) {
	b.pdf.Line(x1, y1, x2, y2)
}

func (b *fpdfBackend) Advance(h float64) {
	b.pdf.Ln(h)
}

func (b *fpdfBackend) ResetX() {
	b.pdf.SetX(pageLeftMargin)
}

func (b *fpdfBackend) Y() float64 {
	return b.pdf.GetY()
}

func (b *fpdfBackend) PageNo() int {
	return b.pdf.PageNo()
}

func (b *fpdfBackend) SaveTo(path string) error {
	return b.pdf.OutputFileAndClose(path)
}
