package mdreport

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/feasched/mdreport/internal/fileutil"
)

// Service orchestrates the markdown-to-PDF pipeline for one report run.
type Service struct {
	report     Report
	progress   io.Writer
	newBackend func(headerText string) Backend
}

// New creates a Service with default settings. Use options to override the
// report metadata, progress writer, or backend.
func New(opts ...Option) *Service {
	s := &Service{
		report:     DefaultReport(),
		progress:   os.Stdout,
		newBackend: NewFpdfBackend,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MissingFiles returns the manifest entries absent from dir, in manifest
// order. An empty result means the directory is ready to render.
func MissingFiles(dir string) []string {
	var missing []string
	for _, name := range ManifestFiles {
		if !fileutil.FileExists(filepath.Join(dir, name)) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Generate renders the full manifest from srcDir into a single PDF,
// returning the output path and its size in bytes. If any manifest file is
// missing the run aborts before the backend exists, so no partial artifact
// is ever written.
func (s *Service) Generate(srcDir string) (string, int64, error) {
	if missing := MissingFiles(srcDir); len(missing) > 0 {
		return "", 0, &MissingFilesError{Dir: srcDir, Names: missing}
	}

	b := s.newBackend(s.report.Title + " - " + s.report.Marker)
	st := pagerState{page: b.PageNo(), y: b.Y()}

	for _, name := range ManifestFiles {
		fmt.Fprintf(s.progress, "Processing: %s\n", name)
		data, err := os.ReadFile(filepath.Join(srcDir, name)) // #nosec G304 -- manifest names are fixed constants
		if err != nil {
			return "", 0, fmt.Errorf("%w: %s: %v", ErrReadSource, name, err)
		}
		st = renderBlocks(b, st, segmentBlocks(string(data)))
	}

	st = renderNotice(b, st, s.report)

	outPath := filepath.Join(srcDir, s.report.OutputFile)
	if err := b.SaveTo(outPath); err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	info, err := os.Stat(outPath)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	return outPath, info.Size(), nil
}
