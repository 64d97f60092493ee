package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/jokarl/osgamelist/internal/schema"
	"github.com/jokarl/osgamelist/internal/vocab"
)

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		format   Format
		wantType string
	}{
		{FormatText, "*output.TextRenderer"},
		{FormatJSON, "*output.JSONRenderer"},
		{FormatYAML, "*output.YAMLRenderer"},
		{"unknown", "*output.TextRenderer"}, // Default
		{"", "*output.TextRenderer"},        // Empty defaults to text
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			renderer := NewRenderer(tt.format, false)
			if gotType := fmt.Sprintf("%T", renderer); gotType != tt.wantType {
				t.Errorf("NewRenderer(%q) = %s, want %s", tt.format, gotType, tt.wantType)
			}
		})
	}
}

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		format string
		valid  bool
	}{
		{"text", true},
		{"json", true},
		{"yaml", true},
		{"sarif", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := IsValidFormat(tt.format); got != tt.valid {
				t.Errorf("IsValidFormat(%q) = %v, want %v", tt.format, got, tt.valid)
			}
		})
	}
}

func TestNewVocabularyView(t *testing.T) {
	r := vocab.NewRegistryWithLogger(hclog.NewNullLogger())
	v := r.MustGet(vocab.CategoryLicense)

	all := NewVocabularyView(v, false)
	if len(all.Items) != v.Set().Len() {
		t.Errorf("full view has %d items, want %d", len(all.Items), v.Set().Len())
	}
	if all.Items[0].Name != "2-clause BSD" || all.Items[0].URL == "" {
		t.Errorf("unexpected first item: %+v", all.Items[0])
	}

	withURLs := NewVocabularyView(v, true)
	if len(withURLs.Items) != v.URLs().Len() {
		t.Errorf("URL view has %d items, want %d", len(withURLs.Items), v.URLs().Len())
	}
	for _, item := range withURLs.Items {
		if item.URL == "" {
			t.Errorf("item %q has no URL", item.Name)
		}
	}

	empty := NewVocabularyView(r.MustGet(vocab.CategoryPlatform), true)
	if empty.Items == nil || len(empty.Items) != 0 {
		t.Errorf("expected empty non-nil items for platforms, got %#v", empty.Items)
	}
}

func TestNewCategorySummaries(t *testing.T) {
	r := vocab.NewRegistryWithLogger(hclog.NewNullLogger())

	got := NewCategorySummaries(r.Vocabularies())
	if len(got) != len(r.Categories()) {
		t.Fatalf("got %d summaries, want %d", len(got), len(r.Categories()))
	}
	license := r.MustGet(vocab.CategoryLicense)
	want := CategorySummary{Category: vocab.CategoryLicense, Values: license.Set().Len(), URLs: license.URLs().Len()}
	if got[0] != want {
		t.Errorf("first summary = %+v, want %+v", got[0], want)
	}
}

func TestNewRecordViews(t *testing.T) {
	views := NewRecordViews(schema.Entry, schema.Developer)
	if len(views) != 2 || views[0].Record != "entry" || views[1].Record != "developer" {
		t.Fatalf("unexpected views: %+v", views)
	}

	byName := make(map[string]FieldView)
	for _, f := range views[0].Fields {
		byName[f.Name] = f
	}
	tests := []FieldView{
		{Name: "File", Essential: true},
		{Name: "Home", Essential: true, URL: true},
		{Name: "Play", URL: true, NoComments: true},
		{Name: "Platform", NoComments: true},
		{Name: "Note"},
	}
	for _, want := range tests {
		if got := byName[want.Name]; got != want {
			t.Errorf("field %s = %+v, want %+v", want.Name, got, want)
		}
	}
	if views[0].Fields[0].Name != "File" || views[0].Fields[len(views[0].Fields)-1].Name != "Building" {
		t.Error("entry fields are not in canonical order")
	}
}

func TestRenderers_CategoriesAndRecords(t *testing.T) {
	categories := []CategorySummary{{Category: "license", Values: 44, URLs: 38}, {Category: "platform", Values: 6}}
	records := NewRecordViews(schema.Building)

	for _, format := range []Format{FormatText, FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			renderer := NewRenderer(format, false)

			var buf bytes.Buffer
			if err := renderer.RenderCategories(&buf, categories); err != nil {
				t.Fatalf("RenderCategories error: %v", err)
			}
			switch format {
			case FormatJSON:
				var got []CategorySummary
				if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
					t.Fatalf("invalid JSON: %v", err)
				}
				if diff := cmp.Diff(categories, got); diff != "" {
					t.Errorf("categories mismatch (-want +got):\n%s", diff)
				}
			case FormatYAML:
				var got []CategorySummary
				if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
					t.Fatalf("invalid YAML: %v", err)
				}
				if diff := cmp.Diff(categories, got); diff != "" {
					t.Errorf("categories mismatch (-want +got):\n%s", diff)
				}
			default:
				if !strings.HasPrefix(buf.String(), "CATEGORY") || !strings.Contains(buf.String(), "license   44") {
					t.Errorf("unexpected text output:\n%s", buf.String())
				}
			}

			buf.Reset()
			if err := renderer.RenderRecords(&buf, records); err != nil {
				t.Fatalf("RenderRecords error: %v", err)
			}
			if !strings.Contains(buf.String(), "Build system") {
				t.Errorf("records output misses Build system:\n%s", buf.String())
			}
		})
	}
}
