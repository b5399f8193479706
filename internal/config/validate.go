package config

import (
	"fmt"
	"strings"
)

// Validate checks the merged settings before the scan starts. Any
// failure here is fatal: nothing has been read or written yet.
func Validate(s *Settings) error {
	if s.ScanRoot == "" {
		return fmt.Errorf("config: 'dir' is required")
	}
	if s.WorkRoot == "" {
		return fmt.Errorf("config: 'work' is required")
	}
	if strings.TrimSpace(s.Marker) == "" {
		return fmt.Errorf("config: 'start' is required and must be non-empty")
	}
	if s.Ext == "" {
		return fmt.Errorf("config: 'ext' is required")
	}
	if s.PathList == "" {
		return fmt.Errorf("config: 'path' is required")
	}

	seen := make(map[string]bool)
	for i, label := range s.Whitelist() {
		if label == "" {
			return fmt.Errorf("config: 'path' has an empty label at position %d", i+1)
		}
		if seen[label] {
			return fmt.Errorf("config: 'path' has duplicate label %q", label)
		}
		seen[label] = true
	}
	return nil
}
