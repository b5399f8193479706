package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds everything a run needs. Field names mirror the CLI
// flags; the same names work in a .linedoc.yaml settings file.
type Settings struct {
	ScanRoot string `yaml:"dir"`   // root of the source tree to scan
	WorkRoot string `yaml:"work"`  // destination root for documents
	Marker   string `yaml:"start"` // block header marker prefix
	PathList string `yaml:"path"`  // dot-separated label whitelist
	Ext      string `yaml:"ext"`   // file extension filter
}

// Load reads a YAML settings file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Merge overlays non-empty flag values onto file-sourced settings.
// Flags win.
func (s *Settings) Merge(flags Settings) {
	if flags.ScanRoot != "" {
		s.ScanRoot = flags.ScanRoot
	}
	if flags.WorkRoot != "" {
		s.WorkRoot = flags.WorkRoot
	}
	if flags.Marker != "" {
		s.Marker = flags.Marker
	}
	if flags.PathList != "" {
		s.PathList = flags.PathList
	}
	if flags.Ext != "" {
		s.Ext = flags.Ext
	}
}

// Whitelist returns the ordered label list. Its length is the maximum
// segment depth.
func (s *Settings) Whitelist() []string {
	if s.PathList == "" {
		return nil
	}
	return strings.Split(s.PathList, ".")
}
