package resolve

import (
	"path/filepath"
	"testing"

	"github.com/jorge-barreto/linedoc/internal/header"
)

func spec(order uint16, segs ...header.Segment) header.PathSpec {
	return header.PathSpec{Segments: segs, Order: order}
}

func TestResolve_NestedSegments(t *testing.T) {
	s := spec(0,
		header.Segment{Label: "PERSON", Value: "Jan Pogompoel"},
		header.Segment{Label: "INVOICE", Value: "001"},
		header.Segment{Label: "ITEM", Value: "line items"},
	)
	d := Resolve(s, "docs")
	wantDir := filepath.Join("docs", "PERSON Jan Pogompoel", "INVOICE 001")
	if d.Dir != wantDir {
		t.Errorf("Dir = %q, want %q", d.Dir, wantDir)
	}
	wantPath := filepath.Join(wantDir, "ITEM line items.md")
	if d.Path != wantPath {
		t.Errorf("Path = %q, want %q", d.Path, wantPath)
	}
}

func TestResolve_SingleSegment(t *testing.T) {
	d := Resolve(spec(0, header.Segment{Label: "PERSON", Value: "Jan"}), "docs")
	if d.Dir != "docs" {
		t.Errorf("Dir = %q, want %q", d.Dir, "docs")
	}
	if d.Path != filepath.Join("docs", "PERSON Jan.md") {
		t.Errorf("Path = %q", d.Path)
	}
}

func TestResolve_EqualSpecsSameDestination(t *testing.T) {
	a := Resolve(spec(0,
		header.Segment{Label: "PERSON", Value: "Jan"},
		header.Segment{Label: "INVOICE", Value: "001"},
	), "docs")
	b := Resolve(spec(7,
		header.Segment{Label: "PERSON", Value: "Jan"},
		header.Segment{Label: "INVOICE", Value: "001"},
	), "docs")
	if a.Path != b.Path || a.Dir != b.Dir {
		t.Errorf("equal segment sequences resolved differently: %+v vs %+v", a, b)
	}
}

func TestResolve_OrderDoesNotAffectDestination(t *testing.T) {
	s := spec(41, header.Segment{Label: "PERSON", Value: "Jan"})
	a := Resolve(s, "docs")
	s.Order = 42
	b := Resolve(s, "docs")
	if a != b {
		t.Errorf("order number changed destination: %+v vs %+v", a, b)
	}
}
