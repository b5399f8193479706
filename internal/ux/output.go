package ux

import (
	"fmt"
	"os"

	"github.com/jorge-barreto/linedoc/internal/report"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// ScanHeader prints the run banner.
func ScanHeader(scanRoot, ext, workRoot string) {
	fmt.Printf("%sScanning%s %s (*%s) %s→%s %s\n", Bold, Reset, scanRoot, ext, Dim, Reset, workRoot)
}

// FileSkipped warns that a single file could not be read and was
// skipped.
func FileSkipped(path string, err error) {
	fmt.Fprintf(os.Stderr, "%swarning:%s skipping %s: %v\n", Yellow, Reset, path, err)
}

// WalkWarning reports an unreadable subtree skipped during the walk.
func WalkWarning(err error) {
	fmt.Fprintf(os.Stderr, "%swarning:%s %v\n", Yellow, Reset, err)
}

// BlockDropped warns that a block's header failed to parse.
func BlockDropped(err error) {
	fmt.Fprintf(os.Stderr, "%swarning:%s dropped block %v\n", Yellow, Reset, err)
}

// Conflict reports a destination omitted for a duplicate order number.
func Conflict(err error) {
	fmt.Fprintf(os.Stderr, "%serror:%s destination omitted: %v\n", Red, Reset, err)
}

// DocumentPreview lists a document that would be written (check mode).
func DocumentPreview(path string, blocks int) {
	fmt.Printf("  %swould write%s %s %s(%d blocks)%s\n", Cyan, Reset, path, Dim, blocks, Reset)
}

// Summary prints the end-of-run counts from the report.
func Summary(r *report.Report) {
	color := Green
	if r.Status == report.StatusAborted {
		color = Red
	}
	fmt.Printf("\n%s%s══ Run %s ══%s\n", Bold, color, r.Status, Reset)
	fmt.Printf("  files scanned      %d\n", r.FilesScanned)
	fmt.Printf("  blocks extracted   %d\n", r.BlocksExtracted)
	fmt.Printf("  blocks dropped     %d\n", r.BlocksDropped)
	fmt.Printf("  documents written  %d\n", r.DocumentsWritten)
	if len(r.SkippedFiles) > 0 {
		fmt.Printf("  files skipped      %d\n", len(r.SkippedFiles))
	}
	if len(r.Conflicts) > 0 {
		fmt.Printf("  %sconflicts          %d%s\n", Red, len(r.Conflicts), Reset)
	}
	fmt.Printf("  %srun id %s (%s)%s\n", Dim, r.RunID, r.Duration, Reset)
}
