// Package paths describes the directory layout of a game database checkout.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jokarl/osgamelist/internal/pathfilter"
)

// Layout holds the absolute locations of the database, its generator code
// and the generated website.
type Layout struct {
	Root string

	Code         string
	WebTemplates string
	Entries      string
	Tocs         string
	Screenshots  string

	Web            string
	WebCSS         string
	WebJS          string
	WebScreenshots string
	WebData        string

	PrivateProperties string
	Inspirations      string
	Developers        string
	Backlog           string
	Rejected          string
	Statistics        string
	ScreenshotsIndex  string
	JSONDatabase      string
	LocalConfig       string
}

// DefaultWebDir is the website directory relative to the root
const DefaultWebDir = "docs"

// NewLayout resolves root to an absolute path without symlinks and derives
// every location from it. The root must be an existing directory.
func NewLayout(root string) (*Layout, error) {
	return NewLayoutWithWebDir(root, DefaultWebDir)
}

// NewLayoutWithWebDir is like NewLayout with a custom website directory,
// given relative to the root.
func NewLayoutWithWebDir(root, webDir string) (*Layout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to access database root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("database root is not a directory: %s", abs)
	}
	if webDir == "" || filepath.IsAbs(webDir) {
		return nil, fmt.Errorf("web directory must be relative to the database root: %q", webDir)
	}
	webDir = filepath.Clean(webDir)
	if webDir == ".." || strings.HasPrefix(webDir, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("web directory must be inside the database root: %q", webDir)
	}

	code := filepath.Join(abs, "code")
	entries := filepath.Join(abs, "entries")
	screenshots := filepath.Join(entries, "screenshots")
	web := filepath.Join(abs, webDir)

	return &Layout{
		Root: abs,

		Code:         code,
		WebTemplates: filepath.Join(code, "html"),
		Entries:      entries,
		Tocs:         filepath.Join(entries, "tocs"),
		Screenshots:  screenshots,

		Web:            web,
		WebCSS:         filepath.Join(web, "css"),
		WebJS:          filepath.Join(web, "js"),
		WebScreenshots: filepath.Join(web, "screenshots"),
		WebData:        filepath.Join(web, "data"),

		PrivateProperties: filepath.Join(abs, "private.properties"),
		Inspirations:      filepath.Join(abs, "inspirations.md"),
		Developers:        filepath.Join(abs, "developers.md"),
		Backlog:           filepath.Join(code, "backlog.txt"),
		Rejected:          filepath.Join(code, "rejected.txt"),
		Statistics:        filepath.Join(abs, "statistics.md"),
		ScreenshotsIndex:  filepath.Join(screenshots, "README.md"),
		JSONDatabase:      filepath.Join(web, "data.json"),
		LocalConfig:       filepath.Join(abs, "local-config.hcl"),
	}, nil
}

// Location is a named path of the layout
type Location struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Locations lists the layout in a stable order for display
func (l *Layout) Locations() []Location {
	return []Location{
		{"root", l.Root},
		{"code", l.Code},
		{"web-templates", l.WebTemplates},
		{"entries", l.Entries},
		{"tocs", l.Tocs},
		{"screenshots", l.Screenshots},
		{"web", l.Web},
		{"web-css", l.WebCSS},
		{"web-js", l.WebJS},
		{"web-screenshots", l.WebScreenshots},
		{"web-data", l.WebData},
		{"private-properties", l.PrivateProperties},
		{"inspirations", l.Inspirations},
		{"developers", l.Developers},
		{"backlog", l.Backlog},
		{"rejected", l.Rejected},
		{"statistics", l.Statistics},
		{"screenshots-index", l.ScreenshotsIndex},
		{"json-database", l.JSONDatabase},
		{"local-config", l.LocalConfig},
	}
}

// EntryFiles returns the absolute paths of all entry files, sorted. A
// missing entries directory yields no files.
func (l *Layout) EntryFiles() ([]string, error) {
	if _, err := os.Stat(l.Entries); os.IsNotExist(err) {
		return nil, nil
	}
	rel, err := pathfilter.Entries().Files(l.Entries)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(rel))
	for i, r := range rel {
		out[i] = filepath.Join(l.Entries, filepath.FromSlash(r))
	}
	return out, nil
}
