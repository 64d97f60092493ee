package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidFields(t *testing.T) {
	if len(ValidFields) != len(ValidProperties)+4 {
		t.Errorf("ValidFields has %d entries, want %d", len(ValidFields), len(ValidProperties)+4)
	}
	if ValidFields[0] != "File" || ValidFields[len(ValidFields)-1] != "Building" {
		t.Errorf("unexpected field order: %v", ValidFields)
	}
	for _, f := range EssentialFields {
		if !IsValidField(f) {
			t.Errorf("essential field %q is not valid", f)
		}
	}
	for _, f := range URLFields {
		if !IsValidField(f) {
			t.Errorf("URL field %q is not valid", f)
		}
	}
}

func TestFieldPredicates(t *testing.T) {
	tests := []struct {
		field          string
		valid, url     bool
		allowsComments bool
	}{
		{"Home", true, true, true},
		{"Play", true, true, false},
		{"Platform", true, false, false},
		{"Code license", true, false, true},
		{"Building", true, false, true},
		{"Homepage", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := IsValidField(tt.field); got != tt.valid {
				t.Errorf("IsValidField = %v, want %v", got, tt.valid)
			}
			if got := IsURLField(tt.field); got != tt.url {
				t.Errorf("IsURLField = %v, want %v", got, tt.url)
			}
			if got := AllowsComments(tt.field); got != tt.allowsComments {
				t.Errorf("AllowsComments = %v, want %v", got, tt.allowsComments)
			}
		})
	}
}

func TestHasValidURLPrefix(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://github.com/0ad/0ad", true},
		{"http://example.org", true},
		{"git://repo.or.cz/x.git", true},
		{"svn://svn.code.sf.net/p/x", true},
		{"bzr://launchpad.net/x", true},
		{"ftp://ftp.example.org", true},
		{"www.example.org", false},
		{"mailto:someone@example.org", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := HasValidURLPrefix(tt.url); got != tt.want {
				t.Errorf("HasValidURLPrefix(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestMissingEssential(t *testing.T) {
	got := MissingEssential([]string{"File", "Title", "Home", "Keyword"})
	want := []string{"State", "Code language", "Code license"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MissingEssential mismatch (-want +got):\n%s", diff)
	}
	if got := MissingEssential(EssentialFields); got != nil {
		t.Errorf("expected nothing missing, got %v", got)
	}
}

func TestOutOfOrder(t *testing.T) {
	tests := []struct {
		name       string
		fields     []string
		wantBefore string
		wantAfter  string
		wantOK     bool
	}{
		{"canonical order", EssentialFields, "", "", false},
		{"swapped", []string{"File", "Title", "State", "Home"}, "State", "Home", true},
		{"unknown fields skipped", []string{"File", "Whatever", "Title"}, "", "", false},
		{"note before code", []string{"Note", "Code license"}, "Note", "Code license", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, after, ok := OutOfOrder(tt.fields)
			if before != tt.wantBefore || after != tt.wantAfter || ok != tt.wantOK {
				t.Errorf("OutOfOrder = (%q, %q, %v), want (%q, %q, %v)",
					before, after, ok, tt.wantBefore, tt.wantAfter, tt.wantOK)
			}
		})
	}
}

func TestRecords(t *testing.T) {
	var names []string
	for _, r := range Records() {
		names = append(names, r.Name)
		for _, f := range r.Essential {
			if !r.IsValid(f) {
				t.Errorf("%s: essential field %q is not valid", r.Name, f)
			}
		}
		for _, f := range r.URLFields {
			if !r.IsValid(f) {
				t.Errorf("%s: URL field %q is not valid", r.Name, f)
			}
		}
	}
	if diff := cmp.Diff([]string{"entry", "building", "developer", "inspiration"}, names); diff != "" {
		t.Errorf("record names mismatch (-want +got):\n%s", diff)
	}

	dev, ok := LookupRecord("developer")
	if !ok {
		t.Fatal("developer record not found")
	}
	if diff := cmp.Diff([]string{"Games"}, dev.MissingEssential([]string{"Name", "Home"})); diff != "" {
		t.Errorf("developer MissingEssential mismatch (-want +got):\n%s", diff)
	}
	if !dev.IsURL("Home") || dev.IsEssential("Home") {
		t.Error("developer Home should be an optional URL field")
	}
	if _, ok := LookupRecord("game"); ok {
		t.Error("unexpected record game")
	}
}

func TestBuildingRecord(t *testing.T) {
	if !Building.IsValid("Build system") || Building.IsValid("Home") {
		t.Error("unexpected building fields")
	}
	if _, _, ok := Building.OutOfOrder([]string{"Build system", "Build instruction", "Note"}); ok {
		t.Error("canonical building order reported as out of order")
	}
	before, after, ok := Building.OutOfOrder([]string{"Note", "Build system"})
	if !ok || before != "Note" || after != "Build system" {
		t.Errorf("OutOfOrder = (%q, %q, %v)", before, after, ok)
	}
	if !Building.AllowsComments("Build system") {
		t.Error("building fields allow comments")
	}
}

func TestShowsDevelopers(t *testing.T) {
	if ShowsDevelopers("Simple DirectMedia Layer") {
		t.Error("expected no developers for SDL")
	}
	if !ShowsDevelopers("0 A.D.") {
		t.Error("expected developers for 0 A.D.")
	}
	if FieldOrder("Nope") != -1 {
		t.Error("FieldOrder of unknown field should be -1")
	}
}
