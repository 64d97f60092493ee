// Package pathfilter selects database files with doublestar glob patterns.
package pathfilter

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter holds include and exclude patterns. Patterns use forward slashes
// and are relative to the directory being filtered.
type Filter struct {
	include []string
	exclude []string
}

// New creates a Filter, rejecting malformed patterns
func New(include, exclude []string) (*Filter, error) {
	for _, p := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid glob pattern: %q", p)
		}
	}
	return &Filter{include: include, exclude: exclude}, nil
}

// Entries returns the filter selecting entry files: markdown files at the
// top of the entries directory, without the tables of contents and the
// screenshot index.
func Entries() *Filter {
	return &Filter{
		include: []string{"*.md"},
		exclude: []string{"tocs/**", "screenshots/**", "README.md", "_*.md"},
	}
}

// Match reports whether a relative, slash separated path is selected
func (f *Filter) Match(path string) bool {
	if !matchAny(f.include, path) {
		return false
	}
	return !matchAny(f.exclude, path)
}

// Files returns the selected files below dir, relative to dir and sorted
func (f *Filter) Files(dir string) ([]string, error) {
	fsys := os.DirFS(dir)
	seen := make(map[string]bool)
	var out []string

	for _, pattern := range f.include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q in %s: %w", pattern, dir, err)
		}
		for _, m := range matches {
			if seen[m] || matchAny(f.exclude, m) {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}

	sort.Strings(out)
	return out, nil
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		// Patterns are validated by New, the error is always nil
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}
