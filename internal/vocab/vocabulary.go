package vocab

// Vocabulary is a named category of legal values together with the prefix
// table used to derive reference URLs for them. The derived URLs are
// computed once by NewVocabulary.
type Vocabulary struct {
	category string
	set      *CanonicalSet
	prefixes PrefixMap
	urls     *DerivedMap
}

// NewVocabulary creates a vocabulary and computes its derived URL map.
func NewVocabulary(category string, set *CanonicalSet, prefixes PrefixMap) *Vocabulary {
	p := make(PrefixMap, len(prefixes))
	copy(p, prefixes)
	return &Vocabulary{
		category: category,
		set:      set,
		prefixes: p,
		urls:     BuildDerivedMap(set, p),
	}
}

// Category returns the category name, e.g. "license".
func (v *Vocabulary) Category() string {
	return v.category
}

// Set returns the canonical set.
func (v *Vocabulary) Set() *CanonicalSet {
	return v.set
}

// Prefixes returns a copy of the prefix table.
func (v *Vocabulary) Prefixes() PrefixMap {
	out := make(PrefixMap, len(v.prefixes))
	copy(out, v.prefixes)
	return out
}

// URLs returns the derived name -> URL map.
func (v *Vocabulary) URLs() *DerivedMap {
	return v.urls
}

// Resolve returns the URL for name, "" if it has none, or an
// *UnknownCategoryValueError naming this category.
func (v *Vocabulary) Resolve(name string) (string, error) {
	if err := v.Check(name); err != nil {
		return "", err
	}
	url, _ := v.urls.URL(name)
	return url, nil
}

// Check returns an *UnknownCategoryValueError if name is not legal.
func (v *Vocabulary) Check(name string) error {
	if v.set.Contains(name) {
		return nil
	}
	_, err := resolveURL(v.category, name, v.set, v.prefixes)
	return err
}

// Contains reports whether name is legal in this vocabulary.
func (v *Vocabulary) Contains(name string) bool {
	return v.set.Contains(name)
}
