package vocab

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// CategoryMeta is the pseudo category used when an unknown category name
// is requested from a Registry.
const CategoryMeta = "category"

// Registry holds the built-in vocabularies. It is built once at startup by
// NewRegistry and is read-only afterwards.
type Registry struct {
	vocabularies []*Vocabulary
	byCategory   map[string]*Vocabulary
	categories   *CanonicalSet

	ignoredDependencies *CanonicalSet
	aliases             map[string]string // alias -> entry name

	logger hclog.Logger
}

// NewRegistry builds the registry with a default logger.
func NewRegistry() *Registry {
	return NewRegistryWithLogger(hclog.New(&hclog.LoggerOptions{
		Name:   "osgamelist-vocab",
		Level:  hclog.Warn,
		Output: os.Stderr,
	}))
}

// NewRegistryWithLogger builds the registry using logger.
func NewRegistryWithLogger(logger hclog.Logger) *Registry {
	r := &Registry{
		byCategory: make(map[string]*Vocabulary),
		aliases:    make(map[string]string),
		logger:     logger,
	}

	r.add(NewVocabulary(CategoryLicense, MustCanonicalSet(knownLicenses...), licensePrefixes))
	r.add(NewVocabulary(CategoryLanguage, MustCanonicalSet(knownLanguageNames()...), ExactPrefixMap(languageURLs)))
	r.add(NewVocabulary(CategoryPlatform, MustCanonicalSet(validPlatforms...), nil))
	recommended := MustCanonicalSet(recommendedKeywords...)
	interesting, err := recommended.Concat(extraInterestingKeywords...)
	if err != nil {
		panic(err)
	}
	r.add(NewVocabulary(CategoryRecommendedKeyword, recommended, nil))
	r.add(NewVocabulary(CategoryInterestingKeyword, interesting, nil))
	r.add(NewVocabulary(CategoryNonGameKeyword, MustCanonicalSet(nonGameKeywords...), nil))
	r.add(NewVocabulary(CategoryMultiplayer, MustCanonicalSet(multiplayerModes...), nil))
	r.add(NewVocabulary(CategoryBuildSystem, MustCanonicalSet(keys(buildSystemURLs)...), buildSystemURLs.MostSpecificFirst()))
	r.add(NewVocabulary(CategoryCodeDependency, MustCanonicalSet(keys(generalCodeDependencies)...), generalCodeDependencies.MostSpecificFirst()))

	names := make([]string, len(r.vocabularies))
	for i, v := range r.vocabularies {
		names[i] = v.Category()
	}
	r.categories = MustCanonicalSet(names...)
	r.ignoredDependencies = MustCanonicalSet(ignoredCodeDependencies...)
	for _, a := range codeDependencyAliases {
		for _, alias := range a.Aliases {
			r.aliases[alias] = a.Entry
		}
	}

	return r
}

func (r *Registry) add(v *Vocabulary) {
	for _, s := range v.prefixes.Shadows() {
		r.logger.Warn("prefix table contains a shadowed key", "category", v.Category(), "shadow", s.String())
	}
	r.logger.Debug("vocabulary built", "category", v.Category(), "names", v.Set().Len(), "urls", v.URLs().Len())
	r.vocabularies = append(r.vocabularies, v)
	r.byCategory[v.Category()] = v
}

// Get returns the vocabulary for category. An unknown category yields an
// *UnknownCategoryValueError for the "category" pseudo category.
func (r *Registry) Get(category string) (*Vocabulary, error) {
	if v, ok := r.byCategory[category]; ok {
		return v, nil
	}
	_, err := resolveURL(CategoryMeta, category, r.categories, nil)
	return nil, err
}

// MustGet is like Get but panics for unknown categories.
func (r *Registry) MustGet(category string) *Vocabulary {
	v, err := r.Get(category)
	if err != nil {
		panic(err)
	}
	return v
}

// Categories returns the category names in registration order.
func (r *Registry) Categories() []string {
	return r.categories.Names()
}

// Vocabularies returns all vocabularies in registration order.
func (r *Registry) Vocabularies() []*Vocabulary {
	out := make([]*Vocabulary, len(r.vocabularies))
	copy(out, r.vocabularies)
	return out
}

// Resolve looks up name in category.
func (r *Registry) Resolve(category, name string) (string, error) {
	v, err := r.Get(category)
	if err != nil {
		return "", err
	}
	return v.Resolve(name)
}

// CheckMultiplayer validates a multiplayer value. Several modes may be
// combined with "+", e.g. "co-op + online".
func (r *Registry) CheckMultiplayer(value string) error {
	v := r.MustGet(CategoryMultiplayer)
	for _, part := range strings.Split(value, MultiplayerSeparator) {
		if err := v.Check(strings.TrimSpace(part)); err != nil {
			return err
		}
	}
	return nil
}

// IsIgnoredDependency reports whether a code dependency is too general to
// be listed.
func (r *Registry) IsIgnoredDependency(name string) bool {
	return r.ignoredDependencies.Contains(name)
}

// CanonicalDependency maps a code dependency alias (e.g. "SDL2") to the
// entry name it refers to. Names without an alias are returned unchanged.
func (r *Registry) CanonicalDependency(name string) string {
	if entry, ok := r.aliases[name]; ok {
		return entry
	}
	return name
}

// String implements fmt.Stringer.
func (r *Registry) String() string {
	return fmt.Sprintf("Registry(%s)", strings.Join(r.Categories(), ", "))
}

// knownLanguageNames returns the language names sorted case-insensitively
// followed by the None and unknown placeholders.
func knownLanguageNames() []string {
	names := make([]string, 0, len(languageURLs)+2)
	for name := range languageURLs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
	return append(names, ValueNone, ValueUnknown)
}

func keys(pm PrefixMap) []string {
	out := make([]string, len(pm))
	for i, p := range pm {
		out[i] = p.Key
	}
	return out
}
