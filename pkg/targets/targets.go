// Package targets loads the list of targets to analyze from a YAML file.
//
// The file is either a mapping with a "targets" sequence:
//
//	targets:
//	  - octo/alpha
//	  - octo/beta
//
// or a bare top-level sequence of the same strings.
package targets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/papercomputeco/lineage/pkg/run"
)

// ErrDuplicateTarget is returned when a targets file names a target twice.
var ErrDuplicateTarget = errors.New("duplicate target")

// File is the mapping form of a targets file.
type File struct {
	Targets []string `yaml:"targets"`
}

// Load reads and parses the targets file at path.
func Load(path string) ([]run.Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	ts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ts, nil
}

// Parse decodes a targets document. Entries are trimmed and blank entries are
// skipped. An empty document yields no targets.
func Parse(data []byte) ([]run.Target, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return []run.Target{}, nil
	}

	var raw []string
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&raw); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var f File
		if err := root.Decode(&f); err != nil {
			return nil, err
		}
		raw = f.Targets
	default:
		return nil, fmt.Errorf("line %d: expected a sequence of targets or a mapping with a targets key", root.Line)
	}

	out := make([]run.Target, 0, len(raw))
	seen := make(map[run.Target]bool, len(raw))
	for _, s := range raw {
		t := run.Target(strings.TrimSpace(s))
		if t == "" {
			continue
		}
		if seen[t] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTarget, string(t))
		}
		seen[t] = true
		out = append(out, t)
	}

	return out, nil
}

// Merge concatenates target lists, keeping the first occurrence of every
// target.
func Merge(lists ...[]run.Target) []run.Target {
	var out []run.Target
	seen := map[run.Target]bool{}
	for _, l := range lists {
		for _, t := range l {
			if seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// FromArgs converts command line arguments into targets, trimming each and
// dropping blanks.
func FromArgs(args []string) []run.Target {
	out := make([]run.Target, 0, len(args))
	for _, a := range args {
		if t := strings.TrimSpace(a); t != "" {
			out = append(out, run.Target(t))
		}
	}
	return out
}
