// Package walk enumerates the source files to scan.
package walk

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Files walks root recursively and returns every regular file whose
// name ends with ext (case-sensitive), in lexical order. Errors below
// the root are collected as warnings and the subtree is skipped; an
// unreadable root is returned as a hard error.
func Files(root, ext string) ([]string, []error, error) {
	var files []string
	var warnings []error

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("scan root %s: %w", root, err)
			}
			warnings = append(warnings, fmt.Errorf("skipping %s: %w", path, err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, warnings, err
	}
	return files, warnings, nil
}
