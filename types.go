package mdreport

import "io"

// BlockKind identifies the structural type of a Block.
type BlockKind uint8

// Block kinds produced by the segmenter.
const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockBullet
	BlockNumbered
	BlockCheckbox
	BlockTable
	BlockRule
)

// Block is one classified structural fragment of a source document.
// Kind selects which of the remaining fields are meaningful.
type Block struct {
	Kind    BlockKind
	Level   int    // heading level, 1-3
	Ordinal string // literal digit string of a numbered item, never renumbered
	Text    string
	Headers []string
	Rows    [][]string // stored at raw cell count; padding happens at layout time
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B int
}

// Style holds the active font and text color.
type Style struct {
	Family string
	Weight string // "", "B" or "I"
	Size   float64
	Color  RGB
}

// Page geometry in millimeters on A4 portrait.
const (
	pageLeftMargin = 10.0
	pageRightEdge  = 200.0
	contentWidth   = 190.0
	bottomMargin   = 15.0
)

// Table layout limits.
const (
	minColWidth    = 15.0
	gridMaxColumns = 6
	cellMaxRunes   = 20
)

// bodyLineHt is the wrapped line height for body text and list items.
const bodyLineHt = 5.0

// ManifestFiles lists the six required source files, in render order.
var ManifestFiles = [...]string{
	"0-EXECUTIVE-SUMMARY.md",
	"1-technical-explanation.md",
	"2-assumptions.md",
	"3-schedule-minimal.md",
	"4-schedule-optimal.md",
	"5-rosters.md",
}

// Default report settings for a scheduling run.
const (
	DefaultTitle      = "FEA Semester 2 Scheduling Report"
	DefaultMarker     = "CONFIDENTIAL"
	DefaultOutputFile = "FEA-Schedule-Report.pdf"
	DefaultGenerated  = "December 12, 2025"
)

// Report carries document-level settings: the running header is
// "Title - Marker", the artifact is written to OutputFile inside the source
// directory, and Generated is the date line stamped on the notice page.
type Report struct {
	Title      string
	Marker     string
	OutputFile string
	Generated  string
}

// DefaultReport returns the report settings used when no config overrides
// them.
func DefaultReport() Report {
	return Report{
		Title:      DefaultTitle,
		Marker:     DefaultMarker,
		OutputFile: DefaultOutputFile,
		Generated:  DefaultGenerated,
	}
}

// Option configures a Service.
type Option func(*Service)

// WithReport overrides the default report settings.
func WithReport(r Report) Option {
	return func(s *Service) {
		s.report = r
	}
}

// WithProgress redirects per-file progress lines (default os.Stdout).
func WithProgress(w io.Writer) Option {
	return func(s *Service) {
		s.progress = w
	}
}

// WithBackendFactory substitutes the backend constructor, e.g. a recording
// fake in tests. The argument is the running header text.
func WithBackendFactory(f func(headerText string) Backend) Option {
	return func(s *Service) {
		s.newBackend = f
	}
}
