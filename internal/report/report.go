// Package report tracks what one run did: counts, skips, drops, and
// conflicts, saved as YAML when requested.
package report

import (
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	StatusCompleted = "completed"
	StatusAborted   = "aborted"
)

// Report is the record of a single run.
type Report struct {
	RunID    string    `yaml:"run-id"`
	Status   string    `yaml:"status"`
	ScanRoot string    `yaml:"dir"`
	WorkRoot string    `yaml:"work"`
	Started  time.Time `yaml:"started"`
	Finished time.Time `yaml:"finished"`
	Duration string    `yaml:"duration"`

	FilesScanned     int `yaml:"files-scanned"`
	BlocksExtracted  int `yaml:"blocks-extracted"`
	BlocksDropped    int `yaml:"blocks-dropped"`
	DocumentsWritten int `yaml:"documents-written"`

	SkippedFiles []string `yaml:"skipped-files,omitempty"`
	Drops        []string `yaml:"drops,omitempty"`
	Conflicts    []string `yaml:"conflicts,omitempty"`
}

// New starts a report for a run against the given roots.
func New(scanRoot, workRoot string) *Report {
	return &Report{
		RunID:    uuid.NewString(),
		ScanRoot: scanRoot,
		WorkRoot: workRoot,
		Started:  time.Now(),
	}
}

// Finish stamps the end time, duration, and final status.
func (r *Report) Finish(status string) {
	r.Status = status
	r.Finished = time.Now()
	d := r.Finished.Sub(r.Started)
	r.Duration = d.Round(time.Millisecond).String()
}

// Save writes the report as YAML, atomically.
func (r *Report) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, data, 0644)
}
