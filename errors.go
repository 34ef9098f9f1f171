package mdreport

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for report generation.
var (
	ErrMissingSourceFile = errors.New("required source file missing")
	ErrReadSource        = errors.New("failed to read source file")
	ErrWriteDocument     = errors.New("failed to write report document")
)

// MissingFilesError reports every manifest entry absent from the source
// directory. It is returned before any page is drawn, so a run that fails
// here produces no artifact.
type MissingFilesError struct {
	Dir   string
	Names []string
}

func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("%v: %s (in %s)", ErrMissingSourceFile, strings.Join(e.Names, ", "), e.Dir)
}

// Unwrap allows errors.Is(err, ErrMissingSourceFile).
func (e *MissingFilesError) Unwrap() error { return ErrMissingSourceFile }
