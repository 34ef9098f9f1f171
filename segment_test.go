package mdreport

import (
	"reflect"
	"testing"
)

func TestSegmentHeadings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		level int
		text  string
	}{
		{name: "level 1", input: "# T", level: 1, text: "T"},
		{name: "level 2", input: "## T", level: 2, text: "T"},
		{name: "level 3", input: "### T", level: 3, text: "T"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks := segmentBlocks(tt.input)
			if len(blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(blocks))
			}
			blk := blocks[0]
			if blk.Kind != BlockHeading || blk.Level != tt.level || blk.Text != tt.text {
				t.Errorf("got %+v, want Heading{%d,%q}", blk, tt.level, tt.text)
			}
		})
	}
}

func TestSegmentHeadingTextIsRaw(t *testing.T) {
	t.Parallel()

	blocks := segmentBlocks("# **Bold** Title")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Text != "**Bold** Title" {
		t.Errorf("heading text = %q, want markers preserved", blocks[0].Text)
	}
}

func TestSegmentDeepHeadingFallsToParagraph(t *testing.T) {
	t.Parallel()

	blocks := segmentBlocks("#### too deep")
	if len(blocks) != 1 || blocks[0].Kind != BlockParagraph {
		t.Fatalf("got %+v, want a single paragraph", blocks)
	}
}

func TestSegmentTable(t *testing.T) {
	t.Parallel()

	input := "A | B | C\n|---|---|---|\na1 | b1 | c1\na2 | b2 | c2\n"
	blocks := segmentBlocks(input)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	blk := blocks[0]
	if blk.Kind != BlockTable {
		t.Fatalf("kind = %v, want BlockTable", blk.Kind)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(blk.Headers, want) {
		t.Errorf("headers = %v, want %v", blk.Headers, want)
	}
	wantRows := [][]string{{"a1", "b1", "c1"}, {"a2", "b2", "c2"}}
	if !reflect.DeepEqual(blk.Rows, wantRows) {
		t.Errorf("rows = %v, want %v", blk.Rows, wantRows)
	}
}

func TestSegmentTableWithoutSeparator(t *testing.T) {
	t.Parallel()

	blocks := segmentBlocks("A | B\na1 | b1")
	if len(blocks) != 1 || blocks[0].Kind != BlockTable {
		t.Fatalf("got %+v, want one table", blocks)
	}
	if len(blocks[0].Rows) != 1 {
		t.Errorf("rows = %d, want 1", len(blocks[0].Rows))
	}
}

func TestSegmentTableFlushTriggers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		// kinds expected after the table block
		after []BlockKind
	}{
		{
			name:  "blank line flushes",
			input: "A | B\na1 | b1\n\nplain text",
			after: []BlockKind{BlockParagraph},
		},
		{
			name:  "rule flushes",
			input: "A | B\na1 | b1\n---",
			after: []BlockKind{BlockRule},
		},
		{
			name:  "heading flushes",
			input: "A | B\na1 | b1\n## Next",
			after: []BlockKind{BlockHeading},
		},
		{
			name:  "end of input flushes",
			input: "A | B\na1 | b1",
			after: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks := segmentBlocks(tt.input)
			if len(blocks) != 1+len(tt.after) {
				t.Fatalf("got %d blocks, want %d: %+v", len(blocks), 1+len(tt.after), blocks)
			}
			if blocks[0].Kind != BlockTable {
				t.Fatalf("first block = %v, want BlockTable", blocks[0].Kind)
			}
			for i, kind := range tt.after {
				if blocks[1+i].Kind != kind {
					t.Errorf("block %d kind = %v, want %v", 1+i, blocks[1+i].Kind, kind)
				}
			}
		})
	}
}

func TestSegmentRuleAfterHeaderRowIsRule(t *testing.T) {
	t.Parallel()

	// A bare --- is never a table separator, even right under a header row.
	blocks := segmentBlocks("A | B\n---")
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2: %+v", len(blocks), blocks)
	}
	if blocks[0].Kind != BlockTable || blocks[1].Kind != BlockRule {
		t.Errorf("got kinds %v, %v; want table then rule", blocks[0].Kind, blocks[1].Kind)
	}
}

func TestSegmentLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		kind    BlockKind
		ordinal string
		text    string
	}{
		{name: "dash bullet", input: "- item", kind: BlockBullet, text: "item"},
		{name: "star bullet", input: "* item", kind: BlockBullet, text: "item"},
		{name: "bullet strips inline markers", input: "- **bold** item", kind: BlockBullet, text: "bold item"},
		{name: "numbered", input: "3. third", kind: BlockNumbered, ordinal: "3", text: "third"},
		{name: "ordinal passthrough", input: "17. later", kind: BlockNumbered, ordinal: "17", text: "later"},
		{name: "checkbox classifies as bullet", input: "- [ ] task", kind: BlockBullet, text: "[ ] task"},
		{name: "checked checkbox classifies as bullet", input: "- [x] done", kind: BlockBullet, text: "[x] done"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks := segmentBlocks(tt.input)
			if len(blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(blocks))
			}
			blk := blocks[0]
			if blk.Kind != tt.kind || blk.Text != tt.text || blk.Ordinal != tt.ordinal {
				t.Errorf("got %+v, want kind=%v ordinal=%q text=%q", blk, tt.kind, tt.ordinal, tt.text)
			}
		})
	}
}

func TestSegmentOrdinalsNotRenumbered(t *testing.T) {
	t.Parallel()

	blocks := segmentBlocks("2. b\n2. b again\n9. z")
	want := []string{"2", "2", "9"}
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(want))
	}
	for i, ord := range want {
		if blocks[i].Ordinal != ord {
			t.Errorf("block %d ordinal = %q, want %q", i, blocks[i].Ordinal, ord)
		}
	}
}

func TestSegmentParagraphFallback(t *testing.T) {
	t.Parallel()

	blocks := segmentBlocks("just *some* text")
	if len(blocks) != 1 || blocks[0].Kind != BlockParagraph {
		t.Fatalf("got %+v, want one paragraph", blocks)
	}
	if blocks[0].Text != "just some text" {
		t.Errorf("paragraph text = %q, want inline markers stripped", blocks[0].Text)
	}
}

func TestSegmentRules(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"---", "***"} {
		blocks := segmentBlocks(line)
		if len(blocks) != 1 || blocks[0].Kind != BlockRule {
			t.Errorf("segmentBlocks(%q) = %+v, want one rule", line, blocks)
		}
	}
}

func TestSegmentStraySeparatorSkipped(t *testing.T) {
	t.Parallel()

	blocks := segmentBlocks("|---|---|")
	if len(blocks) != 0 {
		t.Errorf("stray separator produced %+v, want nothing", blocks)
	}
}

func TestSegmentBlankLinesAreSeparatorsOnly(t *testing.T) {
	t.Parallel()

	blocks := segmentBlocks("one\n\n\ntwo")
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
}

func TestSegmentDeterministic(t *testing.T) {
	t.Parallel()

	input := "# H\n\npara **b**\n\nA | B\n|---|---|\na | b\n\n- item\n1. one\n---\nend"
	first := segmentBlocks(input)
	second := segmentBlocks(input)
	if !reflect.DeepEqual(first, second) {
		t.Error("segmenting identical input twice gave different block sequences")
	}
}

func TestIsSeparatorRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"|---|---|", true},
		{"| :--- | ---: |", true},
		{"|--", true},
		{"---", false}, // no pipe: a rule, not a separator
		{"a | b", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		if got := isSeparatorRow(tt.line); got != tt.want {
			t.Errorf("isSeparatorRow(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
