package mdreport

// Backend is the narrow drawing surface the pager renders onto. The
// implementation owns the physical cursor, stamps the running header and
// footer on every page it creates, and breaks pages automatically when
// wrapped text would cross the bottom margin. Layout logic depends only on
// this interface, never on a concrete PDF library.
type Backend interface {
	// NewPage starts a fresh page with the running header and footer.
	NewPage()

	// SetStyle makes s the active font and text color.
	SetStyle(s Style)

	// SetFill sets the background color used by filled cells.
	SetFill(c RGB)

	// SetDraw sets the stroke color used by DrawLine.
	SetDraw(c RGB)

	// WriteText writes text wrapped across the content width, advancing
	// the cursor by lineHt per rendered line.
	WriteText(lineHt float64, text string)

	// CellAt draws one fixed-size cell at the cursor. The cursor moves
	// right past the cell, or to the start of the next line when br is
	// set.
	CellAt(w, h float64, text string, border, fill bool, align string, br bool)

	// DrawLine strokes a straight line between two points.
	DrawLine(x1, y1, x2, y2 float64)

	// Advance moves the cursor down by h and back to the left margin.
	Advance(h float64)

	// ResetX returns the cursor to the left margin.
	ResetX()

	// Y reports the current vertical cursor position.
	Y() float64

	// PageNo reports the current page number.
	PageNo() int

	// SaveTo finalizes the document and writes it to path.
	SaveTo(path string) error
}
