package check

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Value is one value of a field with its optional comment, e.g. the
// "(mostly)" in "C++ (mostly)".
type Value struct {
	Text    string `yaml:"value"`
	Comment string `yaml:"comment,omitempty"`
}

// UnmarshalYAML accepts a plain scalar or a mapping with value and comment.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		v.Text, v.Comment = node.Value, ""
		return nil
	}
	type plain Value
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*v = Value(p)
	return nil
}

// Field is a named field with its values in file order.
type Field struct {
	Name   string  `yaml:"name"`
	Values []Value `yaml:"values"`
}

// Texts returns the values without comments.
func (f Field) Texts() []string {
	out := make([]string, len(f.Values))
	for i, v := range f.Values {
		out[i] = v.Text
	}
	return out
}

// Entry is the already parsed content of a database entry. Fields and
// Building keep the order of the entry file.
type Entry struct {
	File     string  `yaml:"file"`
	Title    string  `yaml:"title"`
	Fields   []Field `yaml:"fields"`
	Building []Field `yaml:"building,omitempty"`
}

// FieldNames lists the fields present in e in file order, including File,
// Title and Building.
func (e Entry) FieldNames() []string {
	var names []string
	if e.File != "" {
		names = append(names, "File")
	}
	if e.Title != "" {
		names = append(names, "Title")
	}
	for _, f := range e.Fields {
		names = append(names, f.Name)
	}
	if len(e.Building) > 0 {
		names = append(names, "Building")
	}
	return names
}

// Field returns the field called name.
func (e Entry) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// LoadEntries decodes a YAML or JSON sequence of parsed entries. Each entry
// has a file and a title, and fields and building lists of {name, values}
// mappings. A value is a plain string or a {value, comment} mapping.
func LoadEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode entries: %w", err)
	}
	for i, e := range entries {
		if e.File == "" {
			return nil, fmt.Errorf("entry %d has no file name", i+1)
		}
	}
	return entries, nil
}

// fieldNames returns the names of fields in order.
func fieldNames(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}
