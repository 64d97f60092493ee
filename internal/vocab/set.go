package vocab

import (
	"fmt"
	"sort"
	"strings"
)

// CanonicalSet is an ordered sequence of unique names, the only legal values
// of one category. A CanonicalSet is immutable once constructed.
type CanonicalSet struct {
	names []string
	index map[string]int
}

// NewCanonicalSet creates a set from names, preserving their order.
// Empty or duplicate names are rejected.
func NewCanonicalSet(names ...string) (*CanonicalSet, error) {
	s := &CanonicalSet{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("canonical set: empty name at position %d", len(s.names))
		}
		if _, dup := s.index[name]; dup {
			return nil, fmt.Errorf("canonical set: duplicate name %q", name)
		}
		s.index[name] = len(s.names)
		s.names = append(s.names, name)
	}
	return s, nil
}

// MustCanonicalSet is like NewCanonicalSet but panics on invalid input.
// It is intended for static tables.
func MustCanonicalSet(names ...string) *CanonicalSet {
	s, err := NewCanonicalSet(names...)
	if err != nil {
		panic(err)
	}
	return s
}

// Contains reports whether name is a member of the set.
func (s *CanonicalSet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Index returns the position of name in the set, or -1.
func (s *CanonicalSet) Index(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// Names returns a copy of the names in set order.
func (s *CanonicalSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of names in the set.
func (s *CanonicalSet) Len() int {
	return len(s.names)
}

// Concat returns a new set holding the names of s followed by extra.
func (s *CanonicalSet) Concat(extra ...string) (*CanonicalSet, error) {
	return NewCanonicalSet(append(s.Names(), extra...)...)
}

// Prefix maps a name prefix to a reference URL.
type Prefix struct {
	Key string
	URL string
}

// PrefixMap is an ordered list of prefixes. A name is matched by the first
// entry whose key is a string prefix of the name, so entries must be listed
// from most specific to least specific.
type PrefixMap []Prefix

// ExactPrefixMap builds a PrefixMap from an unordered name -> URL table in
// which every key is a full canonical name. Keys are ordered longest first,
// so a name is always matched by its own key before any shorter key that
// happens to prefix it (e.g. "C++" before "C").
func ExactPrefixMap(urls map[string]string) PrefixMap {
	pm := make(PrefixMap, 0, len(urls))
	for k, v := range urls {
		pm = append(pm, Prefix{Key: k, URL: v})
	}
	return pm.MostSpecificFirst()
}

// MostSpecificFirst returns a copy of pm ordered by descending key length.
// Keys of equal length are sorted by key, so the result does not depend on
// the input order.
func (pm PrefixMap) MostSpecificFirst() PrefixMap {
	out := make(PrefixMap, len(pm))
	copy(out, pm)
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Key) != len(out[j].Key) {
			return len(out[i].Key) > len(out[j].Key)
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Match returns the URL of the first entry whose key prefixes name. Entries
// without a URL never match.
func (pm PrefixMap) Match(name string) (string, bool) {
	for _, p := range pm {
		if p.URL != "" && strings.HasPrefix(name, p.Key) {
			return p.URL, true
		}
	}
	return "", false
}

// Shadow describes a prefix that can never win for some name because an
// earlier, shorter key also matches it.
type Shadow struct {
	Earlier string
	Later   string
}

func (s Shadow) String() string {
	return fmt.Sprintf("%q shadows %q", s.Earlier, s.Later)
}

// Shadows lists every pair of entries where an earlier key is a prefix of a
// later key. Such tables silently resolve names to the less specific URL.
func (pm PrefixMap) Shadows() []Shadow {
	var out []Shadow
	for i, earlier := range pm {
		for _, later := range pm[i+1:] {
			if earlier.URL != "" && strings.HasPrefix(later.Key, earlier.Key) {
				out = append(out, Shadow{Earlier: earlier.Key, Later: later.Key})
			}
		}
	}
	return out
}
