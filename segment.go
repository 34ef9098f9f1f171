package mdreport

import (
	"regexp"
	"strings"
	"unicode"
)

var numberedPattern = regexp.MustCompile(`^(\d+)\.\s+(.+)`)

// isSeparatorRow reports whether line is a table separator such as
// |---|---|: only pipes, dashes, colons and whitespace, with at least one
// pipe. Requiring the pipe keeps a bare --- line classified as a page
// break even directly under a header row.
func isSeparatorRow(line string) bool {
	if !strings.Contains(line, "|") {
		return false
	}
	for _, r := range line {
		switch {
		case r == '|' || r == '-' || r == ':':
		case unicode.IsSpace(r):
		default:
			return false
		}
	}
	return true
}

// segmentBlocks scans the document text line by line and returns the typed
// block sequence. Classification order matters and is fixed: blank, page
// break, heading, table line, separator, bullet, numbered item, checkbox,
// paragraph. Note the bullet branch also matches checkbox syntax, so a
// "- [ ]" line always lands there and the checkbox branch never fires; that
// matches the observed behavior this renderer reproduces.
func segmentBlocks(content string) []Block {
	var blocks []Block
	var tb tableBuilder

	flush := func() {
		if blk, ok := tb.flush(); ok {
			blocks = append(blocks, blk)
		}
	}

	lines := strings.Split(content, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		// Blank lines separate blocks and close any pending table.
		if line == "" {
			flush()
			continue
		}

		if line == "---" || line == "***" {
			flush()
			blocks = append(blocks, Block{Kind: BlockRule})
			continue
		}

		// Heading text is the raw suffix: emphasis markers in titles
		// render literally.
		if text, ok := strings.CutPrefix(line, "# "); ok {
			flush()
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 1, Text: text})
			continue
		}
		if text, ok := strings.CutPrefix(line, "## "); ok {
			flush()
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 2, Text: text})
			continue
		}
		if text, ok := strings.CutPrefix(line, "### "); ok {
			flush()
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 3, Text: text})
			continue
		}

		if strings.Contains(line, "|") && !isSeparatorRow(line) {
			wasIdle := !tb.accumulating()
			tb.add(line)
			// A separator row right under the header line is part of
			// the table syntax, not a data row.
			if wasIdle && i+1 < len(lines) && isSeparatorRow(strings.TrimSpace(lines[i+1])) {
				i++
			}
			continue
		}

		// Stray separator outside a table context.
		if isSeparatorRow(line) {
			continue
		}

		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			flush()
			blocks = append(blocks, Block{Kind: BlockBullet, Text: stripInline(line[2:])})
			continue
		}

		if m := numberedPattern.FindStringSubmatch(line); m != nil {
			flush()
			blocks = append(blocks, Block{Kind: BlockNumbered, Ordinal: m[1], Text: stripInline(m[2])})
			continue
		}

		// Unreachable: the bullet branch above already consumed any line
		// starting with "- ". Kept to mirror the classification table.
		if strings.HasPrefix(line, "- [ ]") || strings.HasPrefix(line, "- [x]") {
			flush()
			text := strings.TrimPrefix(line[5:], " ")
			blocks = append(blocks, Block{Kind: BlockCheckbox, Text: stripInline(text)})
			continue
		}

		flush()
		blocks = append(blocks, Block{Kind: BlockParagraph, Text: stripInline(line)})
	}

	flush()
	return blocks
}
