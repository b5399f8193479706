// Package scan turns one source file into its marker-prefixed line
// blocks. A block is a header line whose trimmed content starts with
// the marker, followed by every line up to the next header or EOF.
package scan

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jorge-barreto/linedoc/internal/header"
)

// Block is one extracted line block with its provenance.
type Block struct {
	SourceFile string
	SourceLine int // 1-based line of the header
	Spec       header.PathSpec
	Body       []string // raw lines, verbatim
}

// BlockError records a dropped block: its header failed to parse, so
// the block and its body are skipped while scanning continues.
type BlockError struct {
	File string
	Line int
	Err  error
}

func (e BlockError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

// lineSource yields (lineNumber, text) pairs, 1-based, forward-only.
// It rejects lines that are not valid UTF-8 so binary files fail fast
// instead of producing garbage documents.
type lineSource struct {
	s *bufio.Scanner
	n int
}

func newLineSource(f *os.File) *lineSource {
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineSource{s: s}
}

func (ls *lineSource) next() (int, string, bool) {
	if !ls.s.Scan() {
		return 0, "", false
	}
	ls.n++
	return ls.n, ls.s.Text(), true
}

func (ls *lineSource) err() error {
	return ls.s.Err()
}

// File scans one file for blocks. Blocks whose headers fail to parse
// come back as BlockErrors; the returned error is set only when the
// file itself cannot be read as text, in which case the caller skips
// the whole file.
func File(path, marker string, whitelist []string) ([]Block, []BlockError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var (
		blocks  []Block
		dropped []BlockError
		cur     *Block
	)

	src := newLineSource(f)
	for {
		n, line, ok := src.next()
		if !ok {
			break
		}
		if !utf8.ValidString(line) {
			return nil, nil, fmt.Errorf("%s:%d: not valid UTF-8 text", path, n)
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, marker) {
			if cur != nil {
				blocks = append(blocks, *cur)
				cur = nil
			}

			raw := strings.TrimLeft(trimmed[len(marker):], " \t")
			spec, perr := header.Parse(raw, whitelist)
			if perr != nil {
				// The failed block's body lines fall through with cur
				// unset and are dropped along with it.
				dropped = append(dropped, BlockError{File: path, Line: n, Err: perr})
				continue
			}
			cur = &Block{SourceFile: path, SourceLine: n, Spec: spec}
			continue
		}

		if cur != nil {
			cur.Body = append(cur.Body, line)
		}
	}
	if err := src.err(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if cur != nil {
		blocks = append(blocks, *cur)
	}

	return blocks, dropped, nil
}
