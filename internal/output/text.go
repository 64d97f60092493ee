package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/jokarl/osgamelist/internal/paths"
	"github.com/jokarl/osgamelist/internal/types"
)

// TextRenderer renders output in human-readable text format
type TextRenderer struct {
	ColorEnabled bool
}

// RenderCheck writes the check result in text format
func (r *TextRenderer) RenderCheck(w io.Writer, result *types.CheckResult) error {
	r.configureColor()

	for _, f := range result.Findings {
		r.renderFinding(w, f)
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	r.renderSummary(w, result)
	r.renderResult(w, result)
	return nil
}

// RenderVocabulary writes one name per line, followed by its URL if any
func (r *TextRenderer) RenderVocabulary(w io.Writer, view *VocabularyView) error {
	r.configureColor()

	fmt.Fprintf(w, "%s (%d)\n", r.bold(view.Category), len(view.Items))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, item := range view.Items {
		fmt.Fprintf(tw, "  %s\t%s\n", item.Name, item.URL)
	}
	return tw.Flush()
}

// RenderCategories writes one category per line with its counts
func (r *TextRenderer) RenderCategories(w io.Writer, categories []CategorySummary) error {
	r.configureColor()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tVALUES\tURLS")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", c.Category, c.Values, c.URLs)
	}
	return tw.Flush()
}

// RenderRecords writes the fields of each record, one per line, with their
// properties
func (r *TextRenderer) RenderRecords(w io.Writer, records []RecordView) error {
	r.configureColor()

	for i, rec := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, r.bold(rec.Record))
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, f := range rec.Fields {
			var props []string
			if f.Essential {
				props = append(props, "essential")
			}
			if f.URL {
				props = append(props, "url")
			}
			if f.NoComments {
				props = append(props, "no comments")
			}
			fmt.Fprintf(tw, "  %s\t%s\n", f.Name, strings.Join(props, ", "))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// RenderLocations writes one location per line
func (r *TextRenderer) RenderLocations(w io.Writer, locations []paths.Location) error {
	r.configureColor()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, l := range locations {
		fmt.Fprintf(tw, "%s\t%s\n", l.Name, l.Path)
	}
	return tw.Flush()
}

// configureColor sets the package-wide switch of fatih/color for this
// renderer, so an earlier renderer does not decide for a later one.
func (r *TextRenderer) configureColor() {
	color.NoColor = !r.ColorEnabled
}

func (r *TextRenderer) renderFinding(w io.Writer, f *types.Finding) {
	fmt.Fprintf(w, "%s  %s  %s\n", r.colorSeverity(f.Severity), f.Code, f.Name)
	if f.Entry != "" {
		fmt.Fprintf(w, "  entry: %s\n", f.Entry)
	}
	fmt.Fprintf(w, "  %s\n", f.Message)
	fmt.Fprintln(w)
}

func (r *TextRenderer) renderSummary(w io.Writer, result *types.CheckResult) {
	parts := []string{}

	if result.Summary.Error > 0 {
		parts = append(parts, fmt.Sprintf("%d error", result.Summary.Error))
	}
	if result.Summary.Warning > 0 {
		parts = append(parts, fmt.Sprintf("%d warning", result.Summary.Warning))
	}
	if result.Summary.Notice > 0 {
		parts = append(parts, fmt.Sprintf("%d notice", result.Summary.Notice))
	}

	if len(parts) == 0 {
		parts = append(parts, "no issues found")
	}

	fmt.Fprintf(w, "Summary: %s\n", strings.Join(parts, ", "))
}

func (r *TextRenderer) renderResult(w io.Writer, result *types.CheckResult) {
	if result.Result == types.ResultPass {
		if r.ColorEnabled {
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(w, "Result: %s\n", green(types.ResultPass))
		} else {
			fmt.Fprintln(w, "Result: PASS")
		}
		return
	}
	if r.ColorEnabled {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(w, "Result: %s (fail on %s)\n", red(types.ResultFail), result.FailOn)
	} else {
		fmt.Fprintf(w, "Result: FAIL (fail on %s)\n", result.FailOn)
	}
}

func (r *TextRenderer) bold(s string) string {
	if !r.ColorEnabled {
		return s
	}
	return color.New(color.Bold).Sprint(s)
}

func (r *TextRenderer) colorSeverity(s types.Severity) string {
	str := s.String()
	if !r.ColorEnabled {
		return str
	}

	switch s {
	case types.SeverityError:
		return color.New(color.FgRed, color.Bold).Sprint(str)
	case types.SeverityWarning:
		return color.New(color.FgYellow).Sprint(str)
	case types.SeverityNotice:
		return color.New(color.FgCyan).Sprint(str)
	default:
		return str
	}
}
