package header

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Segment is one labeled component of a block's destination path,
// e.g. label "PERSON", value "Jan Pogompoel".
type Segment struct {
	Label string
	Value string
}

// PathSpec is the parsed form of a block header: the labeled path
// segments plus the block's order number within its destination.
type PathSpec struct {
	Segments []Segment
	Order    uint16
}

// ErrorKind classifies why a header failed to parse.
type ErrorKind int

const (
	KindNoOrder ErrorKind = iota
	KindOrderRange
	KindNoSegments
	KindMalformed
	KindUnknownLabel
	KindLabelOrder
	KindTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case KindNoOrder:
		return "missing order number"
	case KindOrderRange:
		return "order number out of range"
	case KindNoSegments:
		return "no path segments"
	case KindMalformed:
		return "malformed header"
	case KindUnknownLabel:
		return "label not in whitelist"
	case KindLabelOrder:
		return "labels out of whitelist order"
	case KindTooDeep:
		return "path deeper than whitelist"
	}
	return "unknown error"
}

// ParseError reports a rejected header. The scanner drops the block
// and keeps going, so this is data rather than a control-flow signal.
type ParseError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

var (
	orderRe   = regexp.MustCompile(`\[(\d+)\]$`)
	segmentRe = regexp.MustCompile(`\.\*\*([^*]+)\*\*`)
)

// Parse parses one header line (marker already stripped, trimmed)
// against the ordered label whitelist. The grammar is one or more
// ".**LABEL** value" segments followed by a trailing "[N]" order
// token, N in [0, 65535]. Segment labels must be a strict ordered
// prefix of the whitelist, which also caps the depth.
func Parse(in string, whitelist []string) (PathSpec, error) {
	in = strings.TrimSpace(in)

	m := orderRe.FindStringSubmatchIndex(in)
	if m == nil {
		return PathSpec{}, &ParseError{Kind: KindNoOrder, Detail: in}
	}
	order, err := strconv.ParseUint(in[m[2]:m[3]], 10, 16)
	if err != nil {
		return PathSpec{}, &ParseError{Kind: KindOrderRange, Detail: in[m[0]:m[1]]}
	}

	rest := strings.TrimSpace(in[:m[0]])
	marks := segmentRe.FindAllStringSubmatchIndex(rest, -1)
	if len(marks) == 0 {
		return PathSpec{}, &ParseError{Kind: KindNoSegments, Detail: in}
	}
	if marks[0][0] != 0 {
		return PathSpec{}, &ParseError{Kind: KindMalformed, Detail: rest[:marks[0][0]]}
	}
	if len(marks) > len(whitelist) {
		return PathSpec{}, &ParseError{
			Kind:   KindTooDeep,
			Detail: fmt.Sprintf("%d segments, max %d", len(marks), len(whitelist)),
		}
	}

	segments := make([]Segment, 0, len(marks))
	for i, mk := range marks {
		label := rest[mk[2]:mk[3]]
		end := len(rest)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		value := strings.TrimSpace(rest[mk[1]:end])

		if !contains(whitelist, label) {
			return PathSpec{}, &ParseError{Kind: KindUnknownLabel, Detail: label}
		}
		if label != whitelist[i] {
			return PathSpec{}, &ParseError{
				Kind:   KindLabelOrder,
				Detail: fmt.Sprintf("got %q at position %d, want %q", label, i+1, whitelist[i]),
			}
		}
		segments = append(segments, Segment{Label: label, Value: value})
	}

	return PathSpec{Segments: segments, Order: uint16(order)}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
