package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/jokarl/osgamelist/internal/paths"
	"github.com/jokarl/osgamelist/internal/types"
)

func sampleResult() *types.CheckResult {
	result := types.NewCheckResult(types.SeverityWarning)
	result.AddFinding(
		types.NewFinding("V001", "unknown-value", types.SeverityWarning, `unknown license: "GPL-4.0"`).
			WithEntry("0ad.md").
			WithValue("license", "GPL-4.0"),
		types.NewFinding("V004", "ignored-dependency", types.SeverityNotice, `code dependency "zlib" is too general`).
			WithEntry("0ad.md"),
	)
	result.Compute()
	return result
}

func TestTextRenderer_RenderCheck(t *testing.T) {
	renderer := &TextRenderer{ColorEnabled: false}
	var buf bytes.Buffer
	if err := renderer.RenderCheck(&buf, sampleResult()); err != nil {
		t.Fatalf("RenderCheck error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"WARNING  V001  unknown-value",
		"entry: 0ad.md",
		`unknown license: "GPL-4.0"`,
		"NOTICE  V004  ignored-dependency",
		"Summary: 1 warning, 1 notice",
		"Result: FAIL (fail on WARNING)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got:\n%s", want, output)
		}
	}
}

func TestTextRenderer_RenderCheckPass(t *testing.T) {
	result := types.NewCheckResult(types.SeverityError)
	result.Compute()

	renderer := &TextRenderer{ColorEnabled: false}
	var buf bytes.Buffer
	if err := renderer.RenderCheck(&buf, result); err != nil {
		t.Fatalf("RenderCheck error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Summary: no issues found") {
		t.Errorf("expected no issues summary, got:\n%s", output)
	}
	if !strings.Contains(output, "Result: PASS") {
		t.Errorf("expected PASS, got:\n%s", output)
	}
}

func TestTextRenderer_RenderVocabulary(t *testing.T) {
	view := &VocabularyView{
		Category: "license",
		Items: []VocabularyItem{
			{Name: "MIT", URL: "https://en.wikipedia.org/wiki/MIT_License"},
			{Name: "Proprietary"},
		},
	}

	renderer := &TextRenderer{ColorEnabled: false}
	var buf bytes.Buffer
	if err := renderer.RenderVocabulary(&buf, view); err != nil {
		t.Fatalf("RenderVocabulary error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "license (2)" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  MIT") || !strings.HasSuffix(lines[1], "MIT_License") {
		t.Errorf("MIT line = %q", lines[1])
	}
	if strings.TrimSpace(lines[2]) != "Proprietary" {
		t.Errorf("Proprietary line = %q", lines[2])
	}
}

func TestTextRenderer_RenderLocations(t *testing.T) {
	renderer := &TextRenderer{ColorEnabled: false}
	var buf bytes.Buffer
	err := renderer.RenderLocations(&buf, []paths.Location{
		{Name: "root", Path: "/db"},
		{Name: "entries", Path: "/db/entries"},
	})
	if err != nil {
		t.Fatalf("RenderLocations error: %v", err)
	}
	if !strings.Contains(buf.String(), "entries  /db/entries") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestTextRenderer_ColorIsPerRenderer(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	var plain, colored bytes.Buffer
	if err := (&TextRenderer{ColorEnabled: false}).RenderCheck(&plain, sampleResult()); err != nil {
		t.Fatalf("RenderCheck error: %v", err)
	}
	if err := (&TextRenderer{ColorEnabled: true}).RenderCheck(&colored, sampleResult()); err != nil {
		t.Fatalf("RenderCheck error: %v", err)
	}

	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("plain output contains escape codes:\n%q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("colored output after a plain renderer has no escape codes:\n%q", colored.String())
	}
}

func TestTextRenderer_ColorSeverity(t *testing.T) {
	r := &TextRenderer{ColorEnabled: false}
	if got := r.colorSeverity(types.SeverityError); got != "ERROR" {
		t.Errorf("colorSeverity without color = %q", got)
	}
	if got := r.colorSeverity(types.Severity(99)); got != "UNKNOWN" {
		t.Errorf("colorSeverity(99) = %q", got)
	}
}
