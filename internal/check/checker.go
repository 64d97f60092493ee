// Package check reports data-quality findings for entries whose fields or
// values do not fit the entry schema and the controlled vocabularies.
package check

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/osgamelist/internal/schema"
	"github.com/jokarl/osgamelist/internal/types"
	"github.com/jokarl/osgamelist/internal/vocab"
)

// Check codes
const (
	CodeUnknownCategory        = "V000"
	CodeUnknownValue           = "V001"
	CodeNoRecommendedKeyword   = "V002"
	CodeMultipleNonGame        = "V003"
	CodeIgnoredDependency      = "V004"
	CodePlatformOrder          = "V005"
	CodeUnknownBuildSystem     = "V006"
	CodeUnknownMultiplayerMode = "V007"
	CodeUnknownField           = "V008"
	CodeMissingEssentialField  = "V009"
	CodeFieldOrder             = "V010"
	CodeInvalidURL             = "V011"
	CodeCommentNotAllowed      = "V012"
	CodeDependencyAlias        = "V013"
	CodeDevelopersNotListed    = "V014"
)

// Entry fields with value checks
const (
	FieldCodeLicense    = "Code license"
	FieldAssetsLicense  = "Assets license"
	FieldCodeLanguage   = "Code language"
	FieldPlatform       = "Platform"
	FieldKeyword        = "Keyword"
	FieldCodeDependency = "Code dependency"
	FieldDeveloper      = "Developer"
	FieldBuildSystem    = "Build system"
)

// fieldCategory is the finding category of schema findings, whose value is
// the field name
const fieldCategory = "field"

// fieldCategories maps fields to the vocabulary their values must come from
var fieldCategories = map[string]string{
	FieldCodeLicense:   vocab.CategoryLicense,
	FieldAssetsLicense: vocab.CategoryLicense,
	FieldCodeLanguage:  vocab.CategoryLanguage,
	FieldPlatform:      vocab.CategoryPlatform,
}

// Checker validates entry values against a vocabulary registry
type Checker struct {
	registry *vocab.Registry
	logger   hclog.Logger
}

// NewChecker creates a checker. A nil logger disables logging.
func NewChecker(registry *vocab.Registry, logger hclog.Logger) *Checker {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Checker{registry: registry, logger: logger}
}

// CheckValues checks values against the vocabulary of category. Every
// unknown value becomes a warning referencing entry; an unknown category is
// an error.
func (c *Checker) CheckValues(entry, category string, values []string) []*types.Finding {
	v, err := c.registry.Get(category)
	if err != nil {
		return []*types.Finding{c.unknown(entry, CodeUnknownCategory, "unknown-category", types.SeverityError, err)}
	}

	var findings []*types.Finding
	for _, value := range values {
		if err := v.Check(value); err != nil {
			findings = append(findings, c.unknown(entry, CodeUnknownValue, "unknown-value", types.SeverityWarning, err))
		}
	}
	return findings
}

// CheckKeywords checks that at least one recommended keyword is present and
// that at most one non-game keyword is used. A "multiplayer" keyword may
// name its modes, e.g. "multiplayer online + co-op", which are checked too.
func (c *Checker) CheckKeywords(entry string, keywords []string) []*types.Finding {
	recommended := c.registry.MustGet(vocab.CategoryRecommendedKeyword)
	nonGame := c.registry.MustGet(vocab.CategoryNonGameKeyword)

	var findings []*types.Finding
	hasRecommended := false
	var nonGameUsed []string
	for _, kw := range keywords {
		if modes, ok := multiplayerModes(kw); ok && modes != "" {
			findings = append(findings, c.CheckMultiplayer(entry, []string{modes})...)
		}
		if recommended.Contains(kw) {
			hasRecommended = true
		}
		if nonGame.Contains(kw) {
			nonGameUsed = append(nonGameUsed, kw)
		}
	}

	if !hasRecommended {
		findings = append(findings, types.NewFinding(CodeNoRecommendedKeyword, "no-recommended-keyword", types.SeverityWarning,
			"entry has no recommended keyword").
			WithEntry(entry).
			WithValue(vocab.CategoryRecommendedKeyword, strings.Join(keywords, ", ")))
	}
	if len(nonGameUsed) > 1 {
		findings = append(findings, types.NewFinding(CodeMultipleNonGame, "multiple-non-game-keywords", types.SeverityWarning,
			fmt.Sprintf("entry has %d non-game keywords, at most one is allowed", len(nonGameUsed))).
			WithEntry(entry).
			WithValue(vocab.CategoryNonGameKeyword, strings.Join(nonGameUsed, ", ")))
	}
	return findings
}

// CheckPlatforms checks platform values and their order.
func (c *Checker) CheckPlatforms(entry string, platforms []string) []*types.Finding {
	findings := c.CheckValues(entry, vocab.CategoryPlatform, platforms)

	set := c.registry.MustGet(vocab.CategoryPlatform).Set()
	last := -1
	for _, p := range platforms {
		i := set.Index(p)
		if i < 0 {
			continue
		}
		if i < last {
			findings = append(findings, types.NewFinding(CodePlatformOrder, "platform-order", types.SeverityWarning,
				fmt.Sprintf("platforms must be given in the order %s", strings.Join(set.Names(), ", "))).
				WithEntry(entry).
				WithValue(vocab.CategoryPlatform, p))
			break
		}
		last = i
	}
	return findings
}

// CheckDependencies reports code dependencies given by an alias instead of
// their entry name, and dependencies that are too general to list.
func (c *Checker) CheckDependencies(entry string, deps []string) []*types.Finding {
	var findings []*types.Finding
	for _, d := range deps {
		name := c.registry.CanonicalDependency(d)
		if name != d {
			findings = append(findings, types.NewFinding(CodeDependencyAlias, "dependency-alias", types.SeverityNotice,
				fmt.Sprintf("code dependency %q refers to the entry %q, use the entry name", d, name)).
				WithEntry(entry).
				WithValue(vocab.CategoryCodeDependency, d).
				WithSuggestion(name))
		}
		if c.registry.IsIgnoredDependency(name) {
			findings = append(findings, types.NewFinding(CodeIgnoredDependency, "ignored-dependency", types.SeverityNotice,
				fmt.Sprintf("code dependency %q is too general and should be removed", d)).
				WithEntry(entry).
				WithValue(vocab.CategoryCodeDependency, d))
		}
	}
	return findings
}

// CheckBuildSystems reports build systems without a reference page.
func (c *Checker) CheckBuildSystems(entry string, systems []string) []*types.Finding {
	v := c.registry.MustGet(vocab.CategoryBuildSystem)
	var findings []*types.Finding
	for _, s := range systems {
		if err := v.Check(s); err != nil {
			f := c.unknown(entry, CodeUnknownBuildSystem, "unknown-build-system", types.SeverityNotice, err)
			findings = append(findings, f)
		}
	}
	return findings
}

// CheckMultiplayer checks multiplayer values, which may combine several
// modes with "+".
func (c *Checker) CheckMultiplayer(entry string, values []string) []*types.Finding {
	var findings []*types.Finding
	for _, value := range values {
		if err := c.registry.CheckMultiplayer(value); err != nil {
			findings = append(findings, c.unknown(entry, CodeUnknownMultiplayerMode, "unknown-multiplayer-mode", types.SeverityWarning, err))
		}
	}
	return findings
}

// Check runs every check that applies to e: first the schema checks, then
// the value checks of each field in file order.
func (c *Checker) Check(e Entry) []*types.Finding {
	findings := c.CheckFields(e)
	for _, f := range e.Fields {
		values := f.Texts()
		switch f.Name {
		case FieldPlatform:
			findings = append(findings, c.CheckPlatforms(e.File, values)...)
		case FieldKeyword:
			findings = append(findings, c.CheckKeywords(e.File, values)...)
		case FieldCodeDependency:
			findings = append(findings, c.CheckDependencies(e.File, values)...)
		default:
			if category, ok := CategoryForField(f.Name); ok {
				findings = append(findings, c.CheckValues(e.File, category, values)...)
			}
		}
	}
	for _, f := range e.Building {
		if f.Name == FieldBuildSystem {
			findings = append(findings, c.CheckBuildSystems(e.File, f.Texts())...)
		}
	}
	return findings
}

// CheckFields checks the fields of e against the entry schema: unknown and
// missing fields, field order, URL schemes, comments where none are allowed
// and developers of entries that do not list them.
func (c *Checker) CheckFields(e Entry) []*types.Finding {
	var findings []*types.Finding
	add := func(code, name string, severity types.Severity, field, msg string) {
		f := types.NewFinding(code, name, severity, msg).WithEntry(e.File)
		if field != "" {
			f.WithValue(fieldCategory, field)
		}
		findings = append(findings, f)
	}

	for _, f := range e.Fields {
		if !schema.IsValidField(f.Name) {
			add(CodeUnknownField, "unknown-field", types.SeverityError, f.Name, fmt.Sprintf("unknown field %q", f.Name))
		}
	}
	for _, f := range e.Building {
		if !schema.Building.IsValid(f.Name) {
			add(CodeUnknownField, "unknown-field", types.SeverityError, f.Name, fmt.Sprintf("unknown building field %q", f.Name))
		}
	}

	for _, name := range schema.MissingEssential(e.FieldNames()) {
		add(CodeMissingEssentialField, "missing-essential-field", types.SeverityError, name,
			fmt.Sprintf("essential field %q is missing", name))
	}

	if before, after, ok := schema.OutOfOrder(e.FieldNames()); ok {
		add(CodeFieldOrder, "field-order", types.SeverityWarning, after,
			fmt.Sprintf("field %q must come before %q", after, before))
	}
	if before, after, ok := schema.Building.OutOfOrder(fieldNames(e.Building)); ok {
		add(CodeFieldOrder, "field-order", types.SeverityWarning, after,
			fmt.Sprintf("building field %q must come before %q", after, before))
	}

	for _, f := range e.Fields {
		for _, v := range f.Values {
			if schema.IsURLField(f.Name) && !schema.HasValidURLPrefix(v.Text) {
				add(CodeInvalidURL, "invalid-url", types.SeverityWarning, f.Name,
					fmt.Sprintf("%s value %q does not start with %s", f.Name, v.Text, strings.Join(schema.ValidURLPrefixes, ", ")))
			}
			if v.Comment != "" && !schema.AllowsComments(f.Name) {
				add(CodeCommentNotAllowed, "comment-not-allowed", types.SeverityWarning, f.Name,
					fmt.Sprintf("%s value %q may not carry a comment", f.Name, v.Text))
			}
		}
	}

	if _, ok := e.Field(FieldDeveloper); ok && !schema.ShowsDevelopers(e.Title) {
		add(CodeDevelopersNotListed, "developers-not-listed", types.SeverityNotice, FieldDeveloper,
			fmt.Sprintf("developers are not listed for %q", e.Title))
	}

	for _, f := range findings {
		c.logger.Warn("schema problem", "entry", e.File, "code", f.Code, "message", f.Message)
	}
	return findings
}

// CheckAll checks every entry and computes the result for failOn.
func (c *Checker) CheckAll(entries []Entry, failOn types.Severity) *types.CheckResult {
	result := types.NewCheckResult(failOn)
	for _, e := range entries {
		result.AddFinding(c.Check(e)...)
	}
	result.Compute()
	c.logger.Debug("check finished", "entries", len(entries), "findings", result.Summary.Total, "result", result.Result)
	return result
}

// CategoryForField returns the vocabulary category checked for field.
func CategoryForField(field string) (string, bool) {
	category, ok := fieldCategories[field]
	return category, ok
}

// multiplayerModes returns the modes named by a "multiplayer" keyword.
func multiplayerModes(keyword string) (string, bool) {
	if !strings.HasPrefix(keyword, vocab.MultiplayerKeyword) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(keyword, vocab.MultiplayerKeyword)), true
}

func (c *Checker) unknown(entry, code, name string, severity types.Severity, err error) *types.Finding {
	f := types.NewFinding(code, name, severity, err.Error()).WithEntry(entry)
	var uerr *vocab.UnknownCategoryValueError
	if errors.As(err, &uerr) {
		f.WithValue(uerr.Category, uerr.Value).WithSuggestion(uerr.Suggestion)
	}
	c.logger.Warn("data-quality problem", "entry", entry, "code", code, "error", err)
	return f
}
