// Package resolve maps a parsed path spec to its destination under
// the work root. Pure path math, no I/O.
package resolve

import (
	"fmt"
	"path/filepath"

	"github.com/jorge-barreto/linedoc/internal/header"
)

// Destination is where a block's document lives: the folder chain for
// the non-terminal segments and the Markdown file for the terminal one.
type Destination struct {
	Dir  string // folder holding the document
	Path string // full path of the .md file
}

// Resolve builds the destination for a path spec. Structurally equal
// segment sequences always resolve to the same destination, so
// Destination.Path doubles as the aggregation key.
func Resolve(spec header.PathSpec, workRoot string) Destination {
	parts := make([]string, 0, len(spec.Segments)+1)
	parts = append(parts, workRoot)
	for _, seg := range spec.Segments[:len(spec.Segments)-1] {
		parts = append(parts, fmt.Sprintf("%s %s", seg.Label, seg.Value))
	}
	dir := filepath.Join(parts...)

	last := spec.Segments[len(spec.Segments)-1]
	file := fmt.Sprintf("%s %s.md", last.Label, last.Value)

	return Destination{
		Dir:  dir,
		Path: filepath.Join(dir, file),
	}
}
