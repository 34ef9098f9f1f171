package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	mdreport "github.com/feasched/mdreport"
	"github.com/feasched/mdreport/internal/config"
	"github.com/feasched/mdreport/internal/dateutil"
)

// sourceDir is the fixed location of the scheduling run's markdown outputs.
// The PDF artifact lands in the same directory.
const sourceDir = "output/fea"

func main() {
	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS env
	// value, in which case runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(sourceDir, os.Stdout, os.Stderr))
}

// run generates the report from dir and returns the process exit code.
func run(dir string, stdout, stderr io.Writer) int {
	rep, err := resolveReport(dir)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}

	svc := mdreport.New(mdreport.WithReport(rep), mdreport.WithProgress(stdout))
	outPath, size, err := svc.Generate(dir)
	if err != nil {
		var missing *mdreport.MissingFilesError
		if errors.As(err, &missing) {
			for _, name := range missing.Names {
				fmt.Fprintf(stderr, "ERROR: %s not found in %s\n", name, missing.Dir)
			}
		} else {
			fmt.Fprintln(stderr, err)
		}
		return exitCodeFor(err)
	}

	fmt.Fprintf(stdout, "\nSUCCESS: PDF created at %s\n", outPath)
	fmt.Fprintf(stdout, "File size: %.1f KB\n", float64(size)/1024)
	return exitSuccess
}

// resolveReport merges the optional report.yaml in dir over the defaults.
func resolveReport(dir string) (mdreport.Report, error) {
	rep := mdreport.DefaultReport()

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return rep, err
	}

	if cfg.Title != "" {
		rep.Title = cfg.Title
	}
	if cfg.Marker != "" {
		rep.Marker = cfg.Marker
	}
	if cfg.Output != "" {
		rep.OutputFile = cfg.Output
	}
	if cfg.Generated != "" {
		generated, err := dateutil.ResolveDate(cfg.Generated, time.Now())
		if err != nil {
			return rep, err
		}
		rep.Generated = generated
	}

	return rep, nil
}
