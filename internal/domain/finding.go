package domain

// Severity classifies a single rule finding.
type Severity string

const (
	SeverityPass     Severity = "pass"
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Finding is one rule evaluation result. Immutable once emitted.
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	File     string   `json:"file,omitempty"`
}

// Summary holds the aggregate counters over a finding list.
// Errors includes critical findings; info findings are not counted.
type Summary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
	Critical int `json:"critical"`
}

// Summarize reduces a finding list to counters. It is a pure function of the
// list contents; permuting the findings never changes the result.
func Summarize(findings []Finding) Summary {
	var s Summary
	for _, f := range findings {
		switch f.Severity {
		case SeverityPass:
			s.Passed++
		case SeverityWarning:
			s.Warnings++
		case SeverityError:
			s.Errors++
		case SeverityCritical:
			s.Errors++
			s.Critical++
		}
	}
	return s
}

// Verdict is the overall deployment-readiness classification.
type Verdict string

const (
	VerdictReady             Verdict = "READY"
	VerdictReadyWithCaution  Verdict = "READY_WITH_CAUTION"
	VerdictBlocked           Verdict = "BLOCKED"
	VerdictDeploymentBlocked Verdict = "DEPLOYMENT_BLOCKED"
)

// DecideVerdict maps aggregate counters to a verdict. The table is evaluated
// top to bottom, first match wins: a single critical finding blocks
// deployment no matter how much else passed.
func DecideVerdict(s Summary, warnThreshold int) Verdict {
	switch {
	case s.Critical > 0:
		return VerdictDeploymentBlocked
	case s.Errors > 0:
		return VerdictBlocked
	case s.Warnings > warnThreshold:
		return VerdictReadyWithCaution
	default:
		return VerdictReady
	}
}

// ExitCode maps a verdict to the process exit status.
func (v Verdict) ExitCode() int {
	switch v {
	case VerdictDeploymentBlocked:
		return 2
	case VerdictBlocked:
		return 1
	default:
		return 0
	}
}

// Report is the ordered finding sequence plus its derived summary and
// verdict. Built once per invocation; nothing survives between runs.
type Report struct {
	Findings []Finding `json:"findings"`
	Summary  Summary   `json:"summary"`
	Verdict  Verdict   `json:"verdict"`
}

// BuildReport aggregates findings into a report.
func BuildReport(findings []Finding, warnThreshold int) *Report {
	summary := Summarize(findings)
	return &Report{
		Findings: findings,
		Summary:  summary,
		Verdict:  DecideVerdict(summary, warnThreshold),
	}
}
