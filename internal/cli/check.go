package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jokarl/osgamelist/internal/check"
	"github.com/jokarl/osgamelist/internal/pathfilter"
	"github.com/jokarl/osgamelist/internal/types"
	"github.com/jokarl/osgamelist/internal/vocab"
)

// errCheckFailed is returned when findings reach the fail-on severity
var errCheckFailed = errors.New("check failed")

var (
	checkEntryFlag  string
	checkFailOnFlag string
	checkFormatFlag string
	checkColorFlag  string
	checkOutputFlag string
	checkQuietFlag  bool
	checkOnlyFlag   string
)

var checkCmd = &cobra.Command{
	Use:   "check <category> <value>...",
	Short: "Check values against a vocabulary",
	Long: `Check one or more values against a category and report data-quality
findings. Unknown values are reported as warnings referencing the entry given
with --entry. The category "keyword" runs the keyword rules, including
"multiplayer <modes>" keywords; "code-dependency" reports aliases and ignored
dependencies and "multiplayer" accepts modes combined with "+".

Examples:
  osgamelist check license GPL-3.0 "Public domain"
  osgamelist check --entry 0ad.md platform Windows Linux macOS
  osgamelist check keyword strategy real-time`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCheck,
}

var checkEntriesCmd = &cobra.Command{
	Use:   "entries <file>",
	Short: "Check parsed entries against the schema and vocabularies",
	Long: `Check a YAML or JSON list of parsed entries (use - for stdin). Each entry
is checked against the entry schema (unknown, missing and misordered fields,
URL schemes, comments) and its values against the vocabularies. Records whose
file is not an entry file, like README.md or tables of contents, are skipped.

Example:
  osgamelist check entries entries.yaml --only "a*.md"`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckEntries,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.AddCommand(checkEntriesCmd)

	checkCmd.Flags().StringVar(&checkEntryFlag, "entry", "", "Entry the values belong to, used in findings")
	checkCmd.PersistentFlags().StringVar(&checkFailOnFlag, "fail-on", "", "Fail on severity: ERROR, WARNING, NOTICE (default from config)")
	checkCmd.PersistentFlags().StringVar(&checkFormatFlag, "format", "", "Output format: text, json, yaml (default from config)")
	checkCmd.PersistentFlags().StringVar(&checkColorFlag, "color", "", "Color mode: auto, always, never (default from config)")
	checkCmd.PersistentFlags().StringVarP(&checkOutputFlag, "output", "o", "", "Write output to file instead of stdout")
	checkCmd.PersistentFlags().BoolVarP(&checkQuietFlag, "quiet", "q", false, "Suppress output unless the check fails")

	checkEntriesCmd.Flags().StringVar(&checkOnlyFlag, "only", "", "Only check entries whose file matches this glob")
}

// checkCategoryKeyword selects the keyword rules instead of a vocabulary
const checkCategoryKeyword = "keyword"

func runCheck(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	failOn, err := e.failOn()
	if err != nil {
		return err
	}

	checker := check.NewChecker(e.registry, e.logger.Named("check"))
	result := types.NewCheckResult(failOn)
	result.AddFinding(checkValues(checker, checkEntryFlag, args[0], args[1:])...)
	result.Compute()

	return writeCheckResult(cmd, e, result)
}

func runCheckEntries(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	failOn, err := e.failOn()
	if err != nil {
		return err
	}

	filter := pathfilter.Entries()
	if checkOnlyFlag != "" {
		filter, err = pathfilter.New([]string{checkOnlyFlag}, nil)
		if err != nil {
			return fmt.Errorf("invalid --only value: %w", err)
		}
	}

	in := cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open entries: %w", err)
		}
		defer f.Close()
		in = f
	}
	entries, err := check.LoadEntries(in)
	if err != nil {
		return err
	}

	var selected []check.Entry
	for _, entry := range entries {
		// the default filter also drops non-entry files when --only is set
		if !filter.Match(entry.File) || !pathfilter.Entries().Match(entry.File) {
			e.logger.Debug("skipping file", "file", entry.File)
			continue
		}
		selected = append(selected, entry)
	}

	checker := check.NewChecker(e.registry, e.logger.Named("check"))
	return writeCheckResult(cmd, e, checker.CheckAll(selected, failOn))
}

func (e *env) failOn() (types.Severity, error) {
	s := checkFailOnFlag
	if s == "" {
		s = e.cfg.Check.FailOn
	}
	failOn, err := types.ParseSeverity(s)
	if err != nil {
		return failOn, fmt.Errorf("invalid --fail-on value: %w", err)
	}
	return failOn, nil
}

// writeCheckResult renders result and turns a failed result into
// errCheckFailed
func writeCheckResult(cmd *cobra.Command, e *env, result *types.CheckResult) error {
	w := cmd.OutOrStdout()
	if checkOutputFlag != "" {
		f, err := os.Create(checkOutputFlag)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if !checkQuietFlag || result.Result == types.ResultFail {
		renderer, err := e.renderer(w, checkFormatFlag, checkColorFlag)
		if err != nil {
			return err
		}
		if err := renderer.RenderCheck(w, result); err != nil {
			return fmt.Errorf("failed to render output: %w", err)
		}
	}

	if result.Result == types.ResultFail {
		return errCheckFailed
	}
	return nil
}

// checkValues dispatches to the check matching category
func checkValues(c *check.Checker, entry, category string, values []string) []*types.Finding {
	switch category {
	case checkCategoryKeyword:
		return c.CheckKeywords(entry, values)
	case vocab.CategoryPlatform:
		return c.CheckPlatforms(entry, values)
	case vocab.CategoryMultiplayer:
		return c.CheckMultiplayer(entry, values)
	case vocab.CategoryBuildSystem:
		return c.CheckBuildSystems(entry, values)
	case vocab.CategoryCodeDependency:
		return c.CheckDependencies(entry, values)
	default:
		return c.CheckValues(entry, category, values)
	}
}
