// Package sarif exports validation reports as SARIF 2.1.0 logs.
package sarif

import (
	"encoding/json"
	"io"

	"github.com/nexus-infinity/nixvet/internal/domain"
)

// Version is the SARIF schema version.
const Version = "2.1.0"

// Log is the top-level SARIF structure.
type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema,omitempty"`
	Runs    []Run  `json:"runs"`
}

// Run represents a single analysis run.
type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results,omitempty"`
}

// Tool describes the analysis tool.
type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver describes the tool's identity.
type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// Result is a single finding.
type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level,omitempty"` // error, warning, note
	Message   Message    `json:"message"`
	Locations []Location `json:"locations,omitempty"`
}

// Message contains the finding's text.
type Message struct {
	Text string `json:"text"`
}

// Location describes where a result was found.
type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation describes a file location.
type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
}

// ArtifactLocation describes a file path.
type ArtifactLocation struct {
	URI string `json:"uri"`
}

// FromReport converts a validation report to a SARIF log. Pass findings are
// omitted: SARIF results are problems, not confirmations.
func FromReport(report *domain.Report, version string) *Log {
	var results []Result
	for _, f := range report.Findings {
		if f.Severity == domain.SeverityPass {
			continue
		}
		r := Result{
			RuleID:  f.Rule,
			Level:   level(f.Severity),
			Message: Message{Text: f.Message},
		}
		if f.File != "" {
			r.Locations = []Location{{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{URI: f.File},
				},
			}}
		}
		results = append(results, r)
	}

	return &Log{
		Version: Version,
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Runs: []Run{{
			Tool:    Tool{Driver: Driver{Name: "nixvet", Version: version}},
			Results: results,
		}},
	}
}

func level(sev domain.Severity) string {
	switch sev {
	case domain.SeverityError, domain.SeverityCritical:
		return "error"
	case domain.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

// Encoder wraps a JSON encoder with SARIF-friendly defaults.
type Encoder struct {
	enc *json.Encoder
}

// NewEncoder creates an indented JSON encoder for SARIF logs.
func NewEncoder(w io.Writer) *Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &Encoder{enc: enc}
}

// Encode writes the SARIF log.
func (e *Encoder) Encode(log *Log) error {
	return e.enc.Encode(log)
}
