package main

import (
	"errors"
	"os"

	mdreport "github.com/feasched/mdreport"
	"github.com/feasched/mdreport/internal/config"
	"github.com/feasched/mdreport/internal/dateutil"
)

// Exit codes for the schedreport CLI.
// Unix conventions: 0=success, 1=general, 2=usage/config, 3=I/O.
const (
	exitSuccess = 0
	exitGeneral = 1
	exitUsage   = 2
	exitIO      = 3
)

// exitCodeFor maps an error to a process exit code. It relies on errors.Is,
// so producers must wrap with fmt.Errorf("%w", ...).
func exitCodeFor(err error) int {
	if err == nil {
		return exitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, mdreport.ErrMissingSourceFile) ||
		errors.Is(err, mdreport.ErrReadSource) ||
		errors.Is(err, mdreport.ErrWriteDocument) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return exitIO
	}

	// Config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrOutputPath) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) {
		return exitUsage
	}

	return exitGeneral
}
