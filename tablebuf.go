package mdreport

import "strings"

type builderState uint8

const (
	builderIdle builderState = iota
	builderAccumulating
)

// tableBuilder accumulates one candidate table across consecutive pipe
// lines. The first line routed in becomes the header row; later lines are
// stored as data rows at their raw cell count. It lives only between the
// first table line and the next flush trigger.
type tableBuilder struct {
	state   builderState
	headers []string
	rows    [][]string
}

func (t *tableBuilder) accumulating() bool { return t.state == builderAccumulating }

// add routes one non-separator pipe line into the builder.
func (t *tableBuilder) add(line string) {
	cells := splitCells(line)
	if t.state == builderIdle {
		t.headers = cells
		t.state = builderAccumulating
		return
	}
	t.rows = append(t.rows, cells)
}

// flush emits the pending table, if any, and resets the builder to idle.
// A pending accumulation with no header cells is discarded.
func (t *tableBuilder) flush() (Block, bool) {
	pending := t.state == builderAccumulating && len(t.headers) > 0
	blk := Block{Kind: BlockTable, Headers: t.headers, Rows: t.rows}
	*t = tableBuilder{}
	if !pending {
		return Block{}, false
	}
	return blk, true
}

// splitCells splits a pipe line into trimmed cells, dropping empty cells
// from the edges only. Interior blanks survive so a row keeps its shape.
func splitCells(line string) []string {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	start, end := 0, len(parts)
	for start < end && parts[start] == "" {
		start++
	}
	for end > start && parts[end-1] == "" {
		end--
	}
	return parts[start:end]
}
