// Package driver composes the pipeline: walk, scan, resolve,
// aggregate, render, flush. It owns the block history for exactly one
// run and throws it away afterwards.
package driver

import (
	"context"
	"fmt"
	"os"

	"github.com/jorge-barreto/linedoc/internal/aggregate"
	"github.com/jorge-barreto/linedoc/internal/config"
	"github.com/jorge-barreto/linedoc/internal/report"
	"github.com/jorge-barreto/linedoc/internal/resolve"
	"github.com/jorge-barreto/linedoc/internal/scan"
	"github.com/jorge-barreto/linedoc/internal/ux"
	"github.com/jorge-barreto/linedoc/internal/walk"
)

// State tracks where a run is in the pipeline.
type State int

const (
	StateIdle State = iota
	StateWalking
	StateScanning
	StateParsing
	StateResolving
	StateRendering
	StateFlushing
	StateDone
	StateAborted
)

var stateNames = [...]string{
	"idle", "walking", "scanning", "parsing", "resolving",
	"rendering", "flushing", "done", "aborted",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Driver runs the extraction pipeline.
type Driver struct {
	Settings *config.Settings
	Report   *report.Report

	// DryRun stops before Flushing: everything is scanned, parsed,
	// and validated, but nothing is written.
	DryRun bool

	state State
}

// State reports the driver's current pipeline state.
func (d *Driver) State() State {
	return d.state
}

// abort marks the run as the alternate terminal state and hands the
// fatal error back to main.
func (d *Driver) abort(err error) error {
	d.state = StateAborted
	d.Report.Finish(report.StatusAborted)
	return err
}

// Run executes one full pass: every file goes through
// scanning/parsing/resolving before the next is pulled; rendering and
// flushing happen once, after the walk is exhausted. Per-block and
// per-destination failures are logged and survived; only an unreadable
// scan root or unwritable work root aborts.
func (d *Driver) Run(ctx context.Context) error {
	whitelist := d.Settings.Whitelist()

	if !d.DryRun {
		if err := os.MkdirAll(d.Settings.WorkRoot, 0755); err != nil {
			return d.abort(fmt.Errorf("work root: %w", err))
		}
	}

	d.state = StateWalking
	files, warnings, err := walk.Files(d.Settings.ScanRoot, d.Settings.Ext)
	if err != nil {
		return d.abort(err)
	}
	for _, w := range warnings {
		ux.WalkWarning(w)
	}

	history := aggregate.NewHistory()
	for _, file := range files {
		if ctx.Err() != nil {
			return d.abort(ctx.Err())
		}

		d.state = StateScanning
		blocks, dropped, err := scan.File(file, d.Settings.Marker, whitelist)
		if err != nil {
			ux.FileSkipped(file, err)
			d.Report.SkippedFiles = append(d.Report.SkippedFiles, file)
			continue
		}
		d.Report.FilesScanned++

		d.state = StateParsing
		for _, drop := range dropped {
			ux.BlockDropped(drop)
			d.Report.Drops = append(d.Report.Drops, drop.Error())
			d.Report.BlocksDropped++
		}

		d.state = StateResolving
		for _, b := range blocks {
			dest := resolve.Resolve(b.Spec, d.Settings.WorkRoot)
			history.Add(dest, b)
		}
		d.Report.BlocksExtracted += len(blocks)
	}

	d.state = StateRendering
	docs, conflicts := history.Documents()
	for _, c := range conflicts {
		ux.Conflict(c)
		d.Report.Conflicts = append(d.Report.Conflicts, c.Error())
	}

	if d.DryRun {
		for _, doc := range docs {
			ux.DocumentPreview(doc.Dest.Path, doc.Blocks)
		}
		d.state = StateDone
		d.Report.Finish(report.StatusCompleted)
		return nil
	}

	d.state = StateFlushing
	for _, doc := range docs {
		if err := os.MkdirAll(doc.Dest.Dir, 0755); err != nil {
			return d.abort(fmt.Errorf("creating %s: %w", doc.Dest.Dir, err))
		}
		if err := report.WriteFileAtomic(doc.Dest.Path, []byte(doc.Content), 0644); err != nil {
			return d.abort(fmt.Errorf("writing %s: %w", doc.Dest.Path, err))
		}
		d.Report.DocumentsWritten++
	}

	d.state = StateDone
	d.Report.Finish(report.StatusCompleted)
	return nil
}
