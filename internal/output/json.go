package output

import (
	"encoding/json"
	"io"

	"github.com/jokarl/osgamelist/internal/paths"
	"github.com/jokarl/osgamelist/internal/types"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct{}

// checkOutput is the document written for check results in JSON and YAML
type checkOutput struct {
	Version  string           `json:"version" yaml:"version"`
	Findings []*types.Finding `json:"findings" yaml:"findings"`
	Summary  types.Summary    `json:"summary" yaml:"summary"`
	Result   string           `json:"result" yaml:"result"`
	FailOn   string           `json:"fail_on" yaml:"fail_on"`
}

func newCheckOutput(result *types.CheckResult) checkOutput {
	findings := result.Findings
	if findings == nil {
		findings = []*types.Finding{}
	}
	return checkOutput{
		Version:  "1.0",
		Findings: findings,
		Summary:  result.Summary,
		Result:   result.Result,
		FailOn:   result.FailOn.String(),
	}
}

// RenderCheck writes the check result in JSON format
func (r *JSONRenderer) RenderCheck(w io.Writer, result *types.CheckResult) error {
	return encodeJSON(w, newCheckOutput(result))
}

// RenderVocabulary writes the vocabulary in JSON format
func (r *JSONRenderer) RenderVocabulary(w io.Writer, view *VocabularyView) error {
	return encodeJSON(w, view)
}

// RenderCategories writes the category overview in JSON format
func (r *JSONRenderer) RenderCategories(w io.Writer, categories []CategorySummary) error {
	return encodeJSON(w, categories)
}

// RenderRecords writes the record fields in JSON format
func (r *JSONRenderer) RenderRecords(w io.Writer, records []RecordView) error {
	return encodeJSON(w, records)
}

// RenderLocations writes the locations in JSON format
func (r *JSONRenderer) RenderLocations(w io.Writer, locations []paths.Location) error {
	return encodeJSON(w, locations)
}

func encodeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
