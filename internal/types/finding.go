package types

// Finding is a data-quality observation about a single database entry
type Finding struct {
	// Code is the unique identifier of the check (e.g., "V001")
	Code string `json:"code" yaml:"code"`

	// Name is the human-readable check name (e.g., "unknown-value")
	Name string `json:"name" yaml:"name"`

	// Severity is the severity level of this finding
	Severity Severity `json:"severity" yaml:"severity"`

	// Entry is the database entry the finding refers to
	Entry string `json:"entry,omitempty" yaml:"entry,omitempty"`

	// Category is the vocabulary category that was checked
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// Value is the offending value
	Value string `json:"value,omitempty" yaml:"value,omitempty"`

	// Message is a short description of the finding
	Message string `json:"message" yaml:"message"`

	// Suggestion is a close legal value, if any
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// NewFinding creates a new Finding with the given parameters
func NewFinding(code, name string, severity Severity, message string) *Finding {
	return &Finding{
		Code:     code,
		Name:     name,
		Severity: severity,
		Message:  message,
	}
}

// WithEntry sets the entry and returns the finding for chaining
func (f *Finding) WithEntry(entry string) *Finding {
	f.Entry = entry
	return f
}

// WithValue sets category and value and returns the finding for chaining
func (f *Finding) WithValue(category, value string) *Finding {
	f.Category = category
	f.Value = value
	return f
}

// WithSuggestion sets the suggestion and returns the finding for chaining
func (f *Finding) WithSuggestion(suggestion string) *Finding {
	f.Suggestion = suggestion
	return f
}

// Result values of a CheckResult
const (
	ResultPass = "PASS"
	ResultFail = "FAIL"
)

// CheckResult represents the result of checking one or more entries
type CheckResult struct {
	// Findings is the list of all findings
	Findings []*Finding `json:"findings" yaml:"findings"`

	// Summary contains counts by severity
	Summary Summary `json:"summary" yaml:"summary"`

	// Result is PASS or FAIL based on the policy
	Result string `json:"result" yaml:"result"`

	// FailOn is the severity threshold used for the result
	FailOn Severity `json:"fail_on" yaml:"fail_on"`
}

// Summary contains counts of findings by severity
type Summary struct {
	Error   int `json:"error" yaml:"error"`
	Warning int `json:"warning" yaml:"warning"`
	Notice  int `json:"notice" yaml:"notice"`
	Total   int `json:"total" yaml:"total"`
}

// NewCheckResult creates a new CheckResult
func NewCheckResult(failOn Severity) *CheckResult {
	return &CheckResult{
		Findings: make([]*Finding, 0),
		FailOn:   failOn,
	}
}

// AddFinding adds findings to the result
func (r *CheckResult) AddFinding(f ...*Finding) {
	r.Findings = append(r.Findings, f...)
}

// Compute calculates the summary and result
func (r *CheckResult) Compute() {
	r.Summary = Summary{}
	failed := false
	for _, f := range r.Findings {
		switch f.Severity {
		case SeverityError:
			r.Summary.Error++
		case SeverityWarning:
			r.Summary.Warning++
		case SeverityNotice:
			r.Summary.Notice++
		}
		if f.Severity.AtLeast(r.FailOn) {
			failed = true
		}
	}
	r.Summary.Total = len(r.Findings)

	if failed {
		r.Result = ResultFail
	} else {
		r.Result = ResultPass
	}
}
