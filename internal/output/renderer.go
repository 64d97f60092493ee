// Package output renders check results, vocabularies, record schemas and
// path layouts.
package output

import (
	"io"

	"github.com/jokarl/osgamelist/internal/paths"
	"github.com/jokarl/osgamelist/internal/schema"
	"github.com/jokarl/osgamelist/internal/types"
	"github.com/jokarl/osgamelist/internal/vocab"
)

// Renderer defines the interface for output renderers
type Renderer interface {
	// RenderCheck writes a data-quality check result
	RenderCheck(w io.Writer, result *types.CheckResult) error
	// RenderVocabulary writes the names of a vocabulary and their URLs
	RenderVocabulary(w io.Writer, view *VocabularyView) error
	// RenderCategories writes an overview of all vocabularies
	RenderCategories(w io.Writer, categories []CategorySummary) error
	// RenderRecords writes the fields of record kinds
	RenderRecords(w io.Writer, records []RecordView) error
	// RenderLocations writes the locations of a database layout
	RenderLocations(w io.Writer, locations []paths.Location) error
}

// Format represents an output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ValidFormats returns the supported format names
func ValidFormats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// IsValidFormat reports whether format is supported
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats() {
		if f == format {
			return true
		}
	}
	return false
}

// NewRenderer creates a renderer for the given format
func NewRenderer(format Format, colorEnabled bool) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}
	case FormatYAML:
		return &YAMLRenderer{}
	default:
		return &TextRenderer{ColorEnabled: colorEnabled}
	}
}

// VocabularyItem is one canonical name and its URL, if any
type VocabularyItem struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// VocabularyView is the printable form of a vocabulary
type VocabularyView struct {
	Category string           `json:"category" yaml:"category"`
	Items    []VocabularyItem `json:"items" yaml:"items"`
}

// NewVocabularyView lists the names of v in canonical order. With onlyURLs
// set, names without a URL are left out, i.e. the derived map is shown.
func NewVocabularyView(v *vocab.Vocabulary, onlyURLs bool) *VocabularyView {
	view := &VocabularyView{Category: v.Category(), Items: []VocabularyItem{}}
	urls := v.URLs()
	for _, name := range v.Set().Names() {
		url, ok := urls.URL(name)
		if onlyURLs && !ok {
			continue
		}
		view.Items = append(view.Items, VocabularyItem{Name: name, URL: url})
	}
	return view
}

// CategorySummary counts the names and URLs of one vocabulary
type CategorySummary struct {
	Category string `json:"category" yaml:"category"`
	Values   int    `json:"values" yaml:"values"`
	URLs     int    `json:"urls" yaml:"urls"`
}

// NewCategorySummaries summarizes every vocabulary in registration order
func NewCategorySummaries(vocabularies []*vocab.Vocabulary) []CategorySummary {
	out := make([]CategorySummary, len(vocabularies))
	for i, v := range vocabularies {
		out[i] = CategorySummary{Category: v.Category(), Values: v.Set().Len(), URLs: v.URLs().Len()}
	}
	return out
}

// FieldView describes one field of a record kind
type FieldView struct {
	Name       string `json:"name" yaml:"name"`
	Essential  bool   `json:"essential" yaml:"essential"`
	URL        bool   `json:"url" yaml:"url"`
	NoComments bool   `json:"no_comments" yaml:"no_comments"`
}

// RecordView is the printable form of a record kind
type RecordView struct {
	Record string      `json:"record" yaml:"record"`
	Fields []FieldView `json:"fields" yaml:"fields"`
}

// NewRecordViews lists the fields of each record in order
func NewRecordViews(records ...schema.Record) []RecordView {
	out := make([]RecordView, len(records))
	for i, r := range records {
		view := RecordView{Record: r.Name, Fields: make([]FieldView, len(r.Fields))}
		for j, f := range r.Fields {
			view.Fields[j] = FieldView{
				Name:       f,
				Essential:  r.IsEssential(f),
				URL:        r.IsURL(f),
				NoComments: !r.AllowsComments(f),
			}
		}
		out[i] = view
	}
	return out
}
