// Package mdreport renders a fixed set of markdown schedule reports into a
// single paginated PDF.
//
// # Quick Start
//
// Create a service and point it at the directory holding the six source
// files:
//
//	svc := mdreport.New()
//	path, size, err := svc.Generate("output/fea")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %s (%d bytes)\n", path, size)
//
// # Rendering Pipeline
//
// Generation follows these stages:
//
//  1. Manifest gate: every required source file must exist, or the run
//     aborts before any page is drawn.
//  2. Block segmentation: each file is scanned line by line into typed
//     blocks (headings, paragraphs, list items, tables, page breaks).
//  3. Layout: blocks are laid out onto A4 pages with a running header and
//     footer, wrapped body text, and bordered table grids.
//  4. A closing confidentiality notice page is appended and the document is
//     written out in one step.
//
// The markdown dialect is deliberately small: #/##/### headings, - and *
// bullets, "N." numbered items, pipe tables with an optional separator row,
// --- and *** page breaks, and **bold**/*italic*/`code` markers which are
// stripped to plain text. Anything else renders as a paragraph; malformed
// input degrades, it never fails.
//
// # Backends
//
// Layout draws through the narrow Backend interface. The default
// implementation uses gofpdf; tests substitute a recording fake via
// WithBackendFactory.
package mdreport
