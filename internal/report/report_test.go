package report

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNew_HasRunID(t *testing.T) {
	a := New("src", "docs")
	b := New("src", "docs")
	if a.RunID == "" {
		t.Fatal("RunID is empty")
	}
	if a.RunID == b.RunID {
		t.Fatal("two runs share a RunID")
	}
	if a.Started.IsZero() {
		t.Error("Started not stamped")
	}
}

func TestFinish_StampsDuration(t *testing.T) {
	r := New("src", "docs")
	r.Finish(StatusCompleted)
	if r.Status != StatusCompleted {
		t.Errorf("Status = %q", r.Status)
	}
	if r.Finished.Before(r.Started) {
		t.Error("Finished before Started")
	}
	if r.Duration == "" {
		t.Error("Duration not set")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	r := New("src", "docs")
	r.FilesScanned = 3
	r.BlocksExtracted = 7
	r.Drops = []string{"a.go:4: missing order number"}
	r.Finish(StatusCompleted)

	path := filepath.Join(t.TempDir(), "report.yaml")
	if err := r.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Report
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("saved report is not valid YAML: %v", err)
	}
	if got.RunID != r.RunID || got.FilesScanned != 3 || got.BlocksExtracted != 7 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.Drops) != 1 {
		t.Fatalf("Drops = %v", got.Drops)
	}
}

func TestWriteFileAtomic_ReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := WriteFileAtomic(path, []byte("old content\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(path, []byte("new\n"), 0644); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new\n" {
		t.Fatalf("content = %q, want %q", data, "new\n")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "doc.md")
	if err := WriteFileAtomic(path, []byte("x"), 0644); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}
