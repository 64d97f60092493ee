package vocab

// ResolveURL returns the reference URL for name.
//
// If name is not a member of set, an *UnknownCategoryValueError is returned.
// Otherwise prefixes is scanned in order and the URL of the first entry whose
// key prefixes name is returned. A member without any matching prefix
// resolves to "" with a nil error.
func ResolveURL(name string, set *CanonicalSet, prefixes PrefixMap) (string, error) {
	return resolveURL("", name, set, prefixes)
}

func resolveURL(category, name string, set *CanonicalSet, prefixes PrefixMap) (string, error) {
	if !set.Contains(name) {
		return "", &UnknownCategoryValueError{
			Category:   category,
			Value:      name,
			Suggestion: closest(name, set.names, suggestionThreshold),
		}
	}
	url, _ := prefixes.Match(name)
	return url, nil
}

// DerivedMap maps canonical names to their resolved URLs. Names without a
// URL are absent. A DerivedMap is never modified after BuildDerivedMap
// returns and may be read concurrently without locking.
type DerivedMap struct {
	names []string
	urls  map[string]string
}

// BuildDerivedMap resolves every name of set against prefixes and keeps the
// names that produced a URL.
func BuildDerivedMap(set *CanonicalSet, prefixes PrefixMap) *DerivedMap {
	d := &DerivedMap{urls: make(map[string]string)}
	for _, name := range set.names {
		url, err := ResolveURL(name, set, prefixes)
		if err != nil || url == "" {
			continue
		}
		d.names = append(d.names, name)
		d.urls[name] = url
	}
	return d
}

// URL returns the URL for name and whether one exists.
func (d *DerivedMap) URL(name string) (string, bool) {
	url, ok := d.urls[name]
	return url, ok
}

// Names returns the names with a URL in canonical set order.
func (d *DerivedMap) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Len returns the number of names with a URL.
func (d *DerivedMap) Len() int {
	return len(d.names)
}

// Map returns a copy of the name -> URL mapping.
func (d *DerivedMap) Map() map[string]string {
	out := make(map[string]string, len(d.urls))
	for k, v := range d.urls {
		out[k] = v
	}
	return out
}
