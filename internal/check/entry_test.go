package check

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadEntries(t *testing.T) {
	input := `
- file: 0ad.md
  title: 0 A.D.
  fields:
    - name: Home
      values: [https://play0ad.com/]
    - name: Code language
      values:
        - C++
        - value: JavaScript
          comment: scripting
  building:
    - name: Build system
      values: [Premake]
- file: zaz.md
  title: Zaz
`
	entries, err := LoadEntries(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadEntries error: %v", err)
	}

	want := []Entry{
		{
			File:  "0ad.md",
			Title: "0 A.D.",
			Fields: []Field{
				{Name: "Home", Values: []Value{{Text: "https://play0ad.com/"}}},
				{Name: "Code language", Values: []Value{{Text: "C++"}, {Text: "JavaScript", Comment: "scripting"}}},
			},
			Building: []Field{{Name: "Build system", Values: []Value{{Text: "Premake"}}}},
		},
		{File: "zaz.md", Title: "Zaz"},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"File", "Title", "Home", "Code language", "Building"}, entries[0].FieldNames()); diff != "" {
		t.Errorf("FieldNames mismatch (-want +got):\n%s", diff)
	}
	if f, ok := entries[0].Field("Code language"); !ok || !cmp.Equal([]string{"C++", "JavaScript"}, f.Texts()) {
		t.Errorf("Field(Code language) = %+v, %v", f, ok)
	}
}

func TestLoadEntries_JSON(t *testing.T) {
	input := `[{"file": "a.md", "title": "A", "fields": [{"name": "Platform", "values": ["Windows", {"value": "Linux", "comment": "x"}]}]}]`

	entries, err := LoadEntries(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadEntries error: %v", err)
	}
	if len(entries) != 1 || entries[0].Fields[0].Values[1].Comment != "x" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestLoadEntries_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a list", "file: a.md\n"},
		{"missing file name", "- title: A\n"},
		{"invalid yaml", "- file: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadEntries(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}

	entries, err := LoadEntries(strings.NewReader(""))
	if err != nil || entries != nil {
		t.Errorf("empty input = (%v, %v), want no entries", entries, err)
	}
}
