package mdreport

import (
	"math"
	"strings"
)

// pagerState threads the layout cursor through render calls: the active
// style, the page the pager believes it is on, and a mirror of the
// backend's vertical cursor. It is owned by the pager alone.
type pagerState struct {
	style Style
	page  int
	y     float64
}

// Fill and stroke colors used by the layout.
var (
	colorWhite       = RGB{255, 255, 255}
	colorHeaderFill  = RGB{237, 242, 247}
	colorRowShade    = RGB{247, 250, 252}
	colorNoticeTitle = RGB{180, 0, 0}
)

// bodyStyle is the paragraph and list-item style.
var bodyStyle = Style{Family: "Helvetica", Size: 10}

// headingSpec describes how one heading level is rendered.
type headingSpec struct {
	size    float64
	cellHt  float64
	before  float64 // vertical gap above the title
	after   float64 // vertical gap below the title
	color   RGB
	divider bool // full-width line under the title
}

// Heading specs indexed by level. Level 1 gets a divider; deeper levels
// shrink and tighten.
var headingSpecs = [4]headingSpec{
	1: {size: 16, cellHt: 10, before: 0, after: 5, color: RGB{26, 54, 93}, divider: true},
	2: {size: 13, cellHt: 8, before: 3, after: 2, color: RGB{44, 82, 130}},
	3: {size: 11, cellHt: 7, before: 2, after: 1, color: RGB{43, 108, 176}},
}

// renderBlocks lays out each block in order and returns the final state.
func renderBlocks(b Backend, st pagerState, blocks []Block) pagerState {
	for _, blk := range blocks {
		st = renderBlock(b, st, blk)
	}
	return st
}

func renderBlock(b Backend, st pagerState, blk Block) pagerState {
	switch blk.Kind {
	case BlockHeading:
		st = renderHeading(b, st, blk)
	case BlockBullet, BlockCheckbox:
		st = renderListItem(b, st, "  * "+blk.Text)
	case BlockNumbered:
		st = renderListItem(b, st, "  "+blk.Ordinal+". "+blk.Text)
	case BlockTable:
		st = renderTable(b, st, blk)
	case BlockRule:
		b.NewPage()
	default:
		st = renderParagraph(b, st, blk.Text)
	}
	st.y = b.Y()
	st.page = b.PageNo()
	return st
}

func renderHeading(b Backend, st pagerState, blk Block) pagerState {
	spec := headingSpecs[blk.Level]
	if spec.before > 0 {
		b.Advance(spec.before)
	}
	st.style = Style{Family: "Helvetica", Weight: "B", Size: spec.size, Color: spec.color}
	b.SetStyle(st.style)
	b.CellAt(0, spec.cellHt, blk.Text, false, false, "L", true)
	if spec.divider {
		b.SetDraw(spec.color)
		b.DrawLine(pageLeftMargin, b.Y(), pageRightEdge, b.Y())
	}
	b.Advance(spec.after)
	return st
}

func renderParagraph(b Backend, st pagerState, text string) pagerState {
	st.style = bodyStyle
	b.SetStyle(st.style)
	b.ResetX()
	b.WriteText(bodyLineHt, text)
	b.Advance(2)
	return st
}

func renderListItem(b Backend, st pagerState, text string) pagerState {
	st.style = bodyStyle
	b.SetStyle(st.style)
	b.ResetX()
	b.WriteText(bodyLineHt, text)
	return st
}

func renderTable(b Backend, st pagerState, blk Block) pagerState {
	cols := len(blk.Headers)
	if cols == 0 {
		return st
	}

	// Too wide for a grid: degrade to pipe-joined text lines.
	if cols > gridMaxColumns {
		st.style = Style{Family: "Helvetica", Size: 9}
		b.SetStyle(st.style)
		b.WriteText(bodyLineHt, strings.Join(blk.Headers, " | "))
		for _, row := range blk.Rows {
			b.WriteText(bodyLineHt, strings.Join(row, " | "))
		}
		b.Advance(3)
		return st
	}

	colW := math.Max(minColWidth, contentWidth/float64(cols))

	st.style = Style{Family: "Helvetica", Weight: "B", Size: 8}
	b.SetStyle(st.style)
	b.SetFill(colorHeaderFill)
	for _, cell := range blk.Headers {
		b.CellAt(colW, 6, truncateCell(cell), true, true, "C", false)
	}
	b.Advance(6)

	st.style = Style{Family: "Helvetica", Size: 8}
	b.SetStyle(st.style)
	shaded := false
	for _, row := range blk.Rows {
		if shaded {
			b.SetFill(colorRowShade)
		} else {
			b.SetFill(colorWhite)
		}
		for i, cell := range row {
			if i >= cols {
				break // excess cells are dropped
			}
			b.CellAt(colW, 5, truncateCell(cell), true, true, "L", false)
		}
		// Short rows get empty bordered cells up to the header count.
		for i := len(row); i < cols; i++ {
			b.CellAt(colW, 5, "", true, true, "L", false)
		}
		b.Advance(5)
		shaded = !shaded
	}
	b.Advance(3)
	b.ResetX()
	return st
}

// truncateCell caps a cell's display text at cellMaxRunes, no ellipsis.
func truncateCell(s string) string {
	r := []rune(s)
	if len(r) <= cellMaxRunes {
		return s
	}
	return string(r[:cellMaxRunes])
}

// Closing notice literals. The body is fixed; only the generated-date line
// and the trailing title come from the report settings.
const (
	noticeTitle = "CONFIDENTIAL - STUDENT PII"
	noticeBody  = "This document contains personally identifiable information (PII) about students. " +
		"Handle according to FERPA guidelines. Do not share outside authorized personnel. " +
		"Do not upload to public repositories or cloud storage without encryption."
)

// renderNotice forces a new page and lays out the confidentiality notice.
func renderNotice(b Backend, st pagerState, rep Report) pagerState {
	b.NewPage()
	st.style = Style{Family: "Helvetica", Weight: "B", Size: 14, Color: colorNoticeTitle}
	b.SetStyle(st.style)
	b.CellAt(0, 10, noticeTitle, false, false, "C", true)
	b.Advance(5)
	st.style = Style{Family: "Helvetica", Size: 11}
	b.SetStyle(st.style)
	b.WriteText(6, noticeBody+"\n\nGenerated: "+rep.Generated+"\n"+rep.Title)
	st.y = b.Y()
	st.page = b.PageNo()
	return st
}
