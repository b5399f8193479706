// Package aggregate collects blocks by destination across the whole
// scan and renders each destination's document once the walk is done.
package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jorge-barreto/linedoc/internal/resolve"
	"github.com/jorge-barreto/linedoc/internal/scan"
)

// History accumulates every block discovered during one run, keyed by
// its resolved destination. It is owned by the driver and discarded at
// run end.
type History struct {
	docs map[string]*entry
}

type entry struct {
	dest   resolve.Destination
	blocks []scan.Block
}

// Document is the fully rendered content for one destination.
type Document struct {
	Dest    resolve.Destination
	Content string
	Blocks  int
}

// Conflict reports a destination dropped because two of its blocks
// share an order number.
type Conflict struct {
	Dest  resolve.Destination
	Order uint16
	FileA string
	LineA int
	FileB string
	LineB int
}

func (c Conflict) Error() string {
	return fmt.Sprintf("%s: duplicate order number [%d] (%s:%d and %s:%d)",
		c.Dest.Path, c.Order, c.FileA, c.LineA, c.FileB, c.LineB)
}

func NewHistory() *History {
	return &History{docs: make(map[string]*entry)}
}

// Add records a block under its destination.
func (h *History) Add(dest resolve.Destination, b scan.Block) {
	e, ok := h.docs[dest.Path]
	if !ok {
		e = &entry{dest: dest}
		h.docs[dest.Path] = e
	}
	e.blocks = append(e.blocks, b)
}

// Blocks returns the total number of accumulated blocks.
func (h *History) Blocks() int {
	n := 0
	for _, e := range h.docs {
		n += len(e.blocks)
	}
	return n
}

// Documents sorts each destination's blocks by order number and
// renders them. A destination with a duplicate order number is
// reported as a Conflict and omitted; every other document is
// returned, in path order so output is deterministic.
func (h *History) Documents() ([]Document, []Conflict) {
	paths := make([]string, 0, len(h.docs))
	for p := range h.docs {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var docs []Document
	var conflicts []Conflict
	for _, p := range paths {
		e := h.docs[p]
		sort.SliceStable(e.blocks, func(i, j int) bool {
			return e.blocks[i].Spec.Order < e.blocks[j].Spec.Order
		})

		if c, ok := findDuplicate(e); ok {
			conflicts = append(conflicts, c)
			continue
		}

		rendered := make([]string, len(e.blocks))
		for i, b := range e.blocks {
			rendered[i] = renderBlock(b)
		}
		docs = append(docs, Document{
			Dest:    e.dest,
			Content: strings.Join(rendered, "\n\n") + "\n",
			Blocks:  len(e.blocks),
		})
	}
	return docs, conflicts
}

func findDuplicate(e *entry) (Conflict, bool) {
	for i := 1; i < len(e.blocks); i++ {
		a, b := e.blocks[i-1], e.blocks[i]
		if a.Spec.Order == b.Spec.Order {
			return Conflict{
				Dest:  e.dest,
				Order: a.Spec.Order,
				FileA: a.SourceFile,
				LineA: a.SourceLine,
				FileB: b.SourceFile,
				LineB: b.SourceLine,
			}, true
		}
	}
	return Conflict{}, false
}

// renderBlock prepends the source link header; body lines go out
// verbatim.
func renderBlock(b scan.Block) string {
	head := fmt.Sprintf("[SOURCE FILE:](file:///%s) LINE: %d", b.SourceFile, b.SourceLine)
	if len(b.Body) == 0 {
		return head
	}
	return head + "\n\n" + strings.Join(b.Body, "\n")
}
