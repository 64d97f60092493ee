package types

import "testing"

func TestNewFinding(t *testing.T) {
	f := NewFinding("V001", "unknown-value", SeverityWarning, "test message")

	if f.Code != "V001" {
		t.Errorf("Code = %q, want %q", f.Code, "V001")
	}
	if f.Name != "unknown-value" {
		t.Errorf("Name = %q, want %q", f.Name, "unknown-value")
	}
	if f.Severity != SeverityWarning {
		t.Errorf("Severity = %v, want %v", f.Severity, SeverityWarning)
	}
	if f.Message != "test message" {
		t.Errorf("Message = %q, want %q", f.Message, "test message")
	}
}

func TestFindingChainedSetters(t *testing.T) {
	f := NewFinding("V001", "unknown-value", SeverityWarning, "msg").
		WithEntry("0ad.md").
		WithValue("license", "GPL-4.0").
		WithSuggestion("GPL-3.0")

	if f.Entry != "0ad.md" {
		t.Errorf("Entry = %q, want %q", f.Entry, "0ad.md")
	}
	if f.Category != "license" {
		t.Errorf("Category = %q, want %q", f.Category, "license")
	}
	if f.Value != "GPL-4.0" {
		t.Errorf("Value = %q, want %q", f.Value, "GPL-4.0")
	}
	if f.Suggestion != "GPL-3.0" {
		t.Errorf("Suggestion = %q, want %q", f.Suggestion, "GPL-3.0")
	}
}

func TestNewCheckResult(t *testing.T) {
	r := NewCheckResult(SeverityWarning)

	if r.FailOn != SeverityWarning {
		t.Errorf("FailOn = %v, want %v", r.FailOn, SeverityWarning)
	}
	if r.Findings == nil {
		t.Error("Findings should be initialized, not nil")
	}
	if len(r.Findings) != 0 {
		t.Errorf("Findings length = %d, want 0", len(r.Findings))
	}
}

func TestCheckResultCompute(t *testing.T) {
	tests := []struct {
		name       string
		failOn     Severity
		findings   []*Finding
		wantResult string
		wantErr    int
		wantWarn   int
		wantNotice int
	}{
		{
			name:       "no findings passes",
			failOn:     SeverityNotice,
			wantResult: ResultPass,
		},
		{
			name:   "warning below error threshold passes",
			failOn: SeverityError,
			findings: []*Finding{
				NewFinding("V001", "unknown-value", SeverityWarning, "w"),
				NewFinding("V004", "ignored-dependency", SeverityNotice, "n"),
			},
			wantResult: ResultPass,
			wantWarn:   1,
			wantNotice: 1,
		},
		{
			name:   "warning at warning threshold fails",
			failOn: SeverityWarning,
			findings: []*Finding{
				NewFinding("V001", "unknown-value", SeverityWarning, "w"),
			},
			wantResult: ResultFail,
			wantWarn:   1,
		},
		{
			name:   "error always fails",
			failOn: SeverityError,
			findings: []*Finding{
				NewFinding("V000", "unknown-category", SeverityError, "e"),
				NewFinding("V001", "unknown-value", SeverityWarning, "w"),
			},
			wantResult: ResultFail,
			wantErr:    1,
			wantWarn:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewCheckResult(tt.failOn)
			r.AddFinding(tt.findings...)
			r.Compute()

			if r.Result != tt.wantResult {
				t.Errorf("Result = %q, want %q", r.Result, tt.wantResult)
			}
			if r.Summary.Error != tt.wantErr {
				t.Errorf("Summary.Error = %d, want %d", r.Summary.Error, tt.wantErr)
			}
			if r.Summary.Warning != tt.wantWarn {
				t.Errorf("Summary.Warning = %d, want %d", r.Summary.Warning, tt.wantWarn)
			}
			if r.Summary.Notice != tt.wantNotice {
				t.Errorf("Summary.Notice = %d, want %d", r.Summary.Notice, tt.wantNotice)
			}
			if r.Summary.Total != len(tt.findings) {
				t.Errorf("Summary.Total = %d, want %d", r.Summary.Total, len(tt.findings))
			}
		})
	}
}
