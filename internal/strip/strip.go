// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package strip applies the line filter to files on disk and runs it over
// the fixed target list, printing per-file line counts and a grand total.
package strip

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/pdiddy/logstrip/internal/filter"
	"github.com/pdiddy/logstrip/internal/textfile"
	"github.com/pdiddy/logstrip/pkg/types"
)

// DefaultTargets lists the files a run processes, relative to the root,
// in processing order.
var DefaultTargets = []string{
	"client/src/components/DRBet.js",
	"client/src/components/SiteManagement.js",
	"client/src/components/Finish.js",
}

var warnColor = color.New(color.FgYellow)

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	// Files has one report per target, in list order.
	Files []types.FileReport

	Processed    int
	Skipped      int
	TotalRemoved int
}

// Total returns the number of targets visited.
func (r BatchResult) Total() int {
	return r.Processed + r.Skipped
}

// ProcessFile filters the file at path in place and prints its line counts
// to w. Read, decode, and write failures are returned; the file is left
// untouched unless the write itself fails partway.
func ProcessFile(path string, w io.Writer) (types.FileReport, error) {
	fmt.Fprintf(w, "Processing: %s\n", path)

	lines, err := textfile.ReadLines(path)
	if err != nil {
		return types.FileReport{}, err
	}

	result := filter.FilterLines(lines)

	if err := textfile.WriteLines(path, result); err != nil {
		return types.FileReport{}, err
	}

	report := types.FileReport{
		Path:          path,
		Status:        types.FileProcessed,
		OriginalLines: len(lines),
		FinalLines:    len(result),
		Removed:       len(lines) - len(result),
	}

	fmt.Fprintf(w, "  Original lines: %d\n", report.OriginalLines)
	fmt.Fprintf(w, "  Lines after processing: %d\n", report.FinalLines)
	fmt.Fprintf(w, "  Removed lines: %d\n", report.Removed)
	return report, nil
}

// ProcessBatch processes each target joined onto root, in order. Targets
// that do not exist are reported and skipped. Any other failure stops the
// batch and is returned with the partial result; files already rewritten
// stay rewritten.
func ProcessBatch(root string, targets []string, w io.Writer) (BatchResult, error) {
	var result BatchResult
	for _, target := range targets {
		fullPath := filepath.Join(root, target)

		if _, err := os.Stat(fullPath); err != nil {
			warnColor.Fprintf(w, "File not found: %s\n", fullPath)
			fmt.Fprintln(w)
			result.Files = append(result.Files, types.FileReport{
				Path:   fullPath,
				Status: types.FileNotFound,
			})
			result.Skipped++
			continue
		}

		report, err := ProcessFile(fullPath, w)
		if err != nil {
			return result, fmt.Errorf("processing %s: %w", target, err)
		}
		result.Files = append(result.Files, report)
		result.Processed++
		result.TotalRemoved += report.Removed
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total removed lines: %d\n", result.TotalRemoved)
	fmt.Fprintln(w, "Done!")
	return result, nil
}

// ResolveRoot returns override when set, otherwise the directory holding
// the running executable.
func ResolveRoot(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
