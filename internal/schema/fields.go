// Package schema lists the fields an entry, its building section, a
// developer or an inspiration record may carry, and the order they must
// appear in.
package schema

import "strings"

// EssentialFields have to be present in each entry, in this order.
var EssentialFields = []string{"File", "Title", "Home", "State", "Keyword", "Code language", "Code license"}

// ValidProperties are the only properties allowed in an entry, in this order.
var ValidProperties = []string{
	"Home", "Media", "Inspiration", "State", "Play", "Download", "Platform", "Keyword", "Code repository", "Code language",
	"Code license", "Code dependency", "Assets license", "Developer",
}

// ValidFields are all fields of an entry, in order.
var ValidFields = concat([]string{"File", "Title"}, ValidProperties, []string{"Note", "Building"})

// URLFields hold URLs.
var URLFields = []string{"Home", "Media", "Play", "Download", "Code repository"}

// ValidURLPrefixes are the accepted URL schemes.
var ValidURLPrefixes = []string{"http://", "https://", "git://", "svn://", "ftp://", "bzr://"}

// ValidBuildingProperties are allowed in the building section.
var ValidBuildingProperties = []string{"Build system", "Build instruction"}

// ValidBuildingFields are all fields of the building section.
var ValidBuildingFields = concat(ValidBuildingProperties, []string{"Note"})

// FieldsWithoutComments may not carry comments.
var FieldsWithoutComments = []string{"Inspiration", "Play", "Download", "Platform", "Code dependency"}

// EntriesWithoutDevelopers do not list developers because the lists would be
// too long and too general.
var EntriesWithoutDevelopers = []string{
	"Box2D", "Dear ImGui", "DirectPython", "FreeType", "Horde3D", "ncurses", "Penumbra", "Simple and Fast Multimedia Library",
	"Simple DirectMedia Layer", "Allegro", "Crystal Space 3D SDK", "Dash Engine", "Delta Engine", "libGDX", "MonoGame", "OGRE",
	"Panda3D", "Phaser", "Qt", "raylib", "ScummVM", "Urho3D",
}

// Record describes the fields of one kind of record.
type Record struct {
	Name       string
	Fields     []string // valid fields, in order
	Essential  []string
	URLFields  []string
	NoComments []string
}

// Entry is a game or library entry.
var Entry = Record{
	Name:       "entry",
	Fields:     ValidFields,
	Essential:  EssentialFields,
	URLFields:  URLFields,
	NoComments: FieldsWithoutComments,
}

// Building is the building section of an entry.
var Building = Record{
	Name:   "building",
	Fields: ValidBuildingFields,
}

// Developer records. Field names are capitalized in the file.
var Developer = Record{
	Name:      "developer",
	Fields:    []string{"Name", "Games", "Home", "Contact", "Organization"},
	Essential: []string{"Name", "Games"},
	URLFields: []string{"Home"},
}

// Inspiration records, i.e. original games. Field names are capitalized in
// the file.
var Inspiration = Record{
	Name:      "inspiration",
	Fields:    []string{"Name", "Inspired entries", "Media", "Included"},
	Essential: []string{"Name", "Inspired entries"},
	URLFields: []string{"Media"},
}

// Records returns all record kinds.
func Records() []Record {
	return []Record{Entry, Building, Developer, Inspiration}
}

// LookupRecord returns the record kind called name.
func LookupRecord(name string) (Record, bool) {
	for _, r := range Records() {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}

// IsValid reports whether field may appear in the record.
func (r Record) IsValid(field string) bool {
	return contains(r.Fields, field)
}

// IsEssential reports whether field must appear in the record.
func (r Record) IsEssential(field string) bool {
	return contains(r.Essential, field)
}

// IsURL reports whether field holds URLs.
func (r Record) IsURL(field string) bool {
	return contains(r.URLFields, field)
}

// AllowsComments reports whether values of field may carry a comment.
func (r Record) AllowsComments(field string) bool {
	return !contains(r.NoComments, field)
}

// Order returns the position of field among the valid fields, or -1.
func (r Record) Order(field string) int {
	for i, f := range r.Fields {
		if f == field {
			return i
		}
	}
	return -1
}

// MissingEssential returns the essential fields absent from fields, in
// canonical order.
func (r Record) MissingEssential(fields []string) []string {
	var missing []string
	for _, f := range r.Essential {
		if !contains(fields, f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// OutOfOrder returns the first pair of fields that violates the canonical
// order, or ok=false if the order is correct. Unknown fields are skipped.
func (r Record) OutOfOrder(fields []string) (before, after string, ok bool) {
	last, lastField := -1, ""
	for _, f := range fields {
		i := r.Order(f)
		if i < 0 {
			continue
		}
		if i < last {
			return lastField, f, true
		}
		last, lastField = i, f
	}
	return "", "", false
}

// IsValidField reports whether field may appear in an entry.
func IsValidField(field string) bool { return Entry.IsValid(field) }

// IsURLField reports whether an entry field holds URLs.
func IsURLField(field string) bool { return Entry.IsURL(field) }

// AllowsComments reports whether values of an entry field may carry a
// comment.
func AllowsComments(field string) bool { return Entry.AllowsComments(field) }

// FieldOrder returns the position of an entry field, or -1.
func FieldOrder(field string) int { return Entry.Order(field) }

// MissingEssential returns the essential entry fields absent from fields.
func MissingEssential(fields []string) []string { return Entry.MissingEssential(fields) }

// OutOfOrder checks fields against the entry field order.
func OutOfOrder(fields []string) (before, after string, ok bool) { return Entry.OutOfOrder(fields) }

// HasValidURLPrefix reports whether url starts with an accepted scheme.
func HasValidURLPrefix(url string) bool {
	for _, p := range ValidURLPrefixes {
		if strings.HasPrefix(url, p) {
			return true
		}
	}
	return false
}

// ShowsDevelopers reports whether developers are listed for an entry.
func ShowsDevelopers(title string) bool {
	return !contains(EntriesWithoutDevelopers, title)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
