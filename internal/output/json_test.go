package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/jokarl/osgamelist/internal/paths"
	"github.com/jokarl/osgamelist/internal/types"
)

func TestJSONRenderer_RenderCheck(t *testing.T) {
	renderer := &JSONRenderer{}
	var buf bytes.Buffer
	if err := renderer.RenderCheck(&buf, sampleResult()); err != nil {
		t.Fatalf("RenderCheck error: %v", err)
	}

	var got struct {
		Version  string `json:"version"`
		Findings []struct {
			Code     string `json:"code"`
			Severity string `json:"severity"`
			Entry    string `json:"entry"`
			Category string `json:"category"`
			Value    string `json:"value"`
		} `json:"findings"`
		Summary types.Summary `json:"summary"`
		Result  string        `json:"result"`
		FailOn  string        `json:"fail_on"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if got.Version != "1.0" || got.Result != "FAIL" || got.FailOn != "WARNING" {
		t.Errorf("unexpected header fields: %+v", got)
	}
	if len(got.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(got.Findings))
	}
	f := got.Findings[0]
	if f.Code != "V001" || f.Severity != "WARNING" || f.Entry != "0ad.md" || f.Category != "license" || f.Value != "GPL-4.0" {
		t.Errorf("unexpected finding: %+v", f)
	}
	if got.Summary.Warning != 1 || got.Summary.Notice != 1 || got.Summary.Total != 2 {
		t.Errorf("unexpected summary: %+v", got.Summary)
	}
}

func TestJSONRenderer_EmptyFindingsIsArray(t *testing.T) {
	result := &types.CheckResult{Result: "PASS"}

	var buf bytes.Buffer
	if err := (&JSONRenderer{}).RenderCheck(&buf, result); err != nil {
		t.Fatalf("RenderCheck error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"findings": []`)) {
		t.Errorf("expected empty findings array, got:\n%s", buf.String())
	}
}

func TestJSONRenderer_RenderVocabulary(t *testing.T) {
	view := &VocabularyView{
		Category: "platform",
		Items:    []VocabularyItem{{Name: "Windows"}, {Name: "Linux"}},
	}

	var buf bytes.Buffer
	if err := (&JSONRenderer{}).RenderVocabulary(&buf, view); err != nil {
		t.Fatalf("RenderVocabulary error: %v", err)
	}

	var got VocabularyView
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if diff := cmp.Diff(*view, got); diff != "" {
		t.Errorf("vocabulary mismatch (-want +got):\n%s", diff)
	}
	if bytes.Contains(buf.Bytes(), []byte(`"url"`)) {
		t.Errorf("empty URLs should be omitted:\n%s", buf.String())
	}
}

func TestYAMLRenderer(t *testing.T) {
	renderer := &YAMLRenderer{}

	var buf bytes.Buffer
	if err := renderer.RenderCheck(&buf, sampleResult()); err != nil {
		t.Fatalf("RenderCheck error: %v", err)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}
	if doc["result"] != "FAIL" || doc["fail_on"] != "WARNING" {
		t.Errorf("unexpected YAML document: %v", doc)
	}
	findings, ok := doc["findings"].([]interface{})
	if !ok || len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %v", doc["findings"])
	}
	first := findings[0].(map[string]interface{})
	if first["severity"] != "WARNING" || first["code"] != "V001" {
		t.Errorf("unexpected first finding: %v", first)
	}

	buf.Reset()
	locations := []paths.Location{{Name: "root", Path: "/db"}}
	if err := renderer.RenderLocations(&buf, locations); err != nil {
		t.Fatalf("RenderLocations error: %v", err)
	}
	var gotLocations []paths.Location
	if err := yaml.Unmarshal(buf.Bytes(), &gotLocations); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if diff := cmp.Diff(locations, gotLocations); diff != "" {
		t.Errorf("locations mismatch (-want +got):\n%s", diff)
	}
}
