package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jokarl/osgamelist/internal/paths"
	"github.com/jokarl/osgamelist/internal/types"
)

// YAMLRenderer renders output in YAML format
type YAMLRenderer struct{}

// RenderCheck writes the check result in YAML format
func (r *YAMLRenderer) RenderCheck(w io.Writer, result *types.CheckResult) error {
	return encodeYAML(w, newCheckOutput(result))
}

// RenderVocabulary writes the vocabulary in YAML format
func (r *YAMLRenderer) RenderVocabulary(w io.Writer, view *VocabularyView) error {
	return encodeYAML(w, view)
}

// RenderCategories writes the category overview in YAML format
func (r *YAMLRenderer) RenderCategories(w io.Writer, categories []CategorySummary) error {
	return encodeYAML(w, categories)
}

// RenderRecords writes the record fields in YAML format
func (r *YAMLRenderer) RenderRecords(w io.Writer, records []RecordView) error {
	return encodeYAML(w, records)
}

// RenderLocations writes the locations in YAML format
func (r *YAMLRenderer) RenderLocations(w io.Writer, locations []paths.Location) error {
	return encodeYAML(w, locations)
}

func encodeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
