// Package rules contains the deployment-readiness rule battery. Each check
// is stateless and independent: it inspects the tree snapshot and the
// version-control collaborator, and returns findings without short-circuiting
// any other check.
package rules

import (
	"github.com/nexus-infinity/nixvet/internal/domain"
)

// Input carries everything a check may inspect. VCS is nil when the tree is
// not a version-control checkout; checks degrade to a warning and skip their
// tracked-file assertions instead of failing.
type Input struct {
	Tree   *domain.TreeSnapshot
	VCS    domain.VersionControl
	Config domain.ValidatorConfig
}

// Check is one named rule. Order in the battery matters only for report
// grouping, never for counts or verdict.
type Check interface {
	Name() string
	Run(in Input) []domain.Finding
}

// Battery returns the full rule battery in display order.
func Battery() []Check {
	return []Check{
		DirectoryStructure{},
		UserData{},
		BackupFiles{},
		SecretsDir{},
		SecretScan{},
		Reproducibility{},
		Documentation{},
		GitClean{},
	}
}

func finding(rule string, sev domain.Severity, msg, file string) domain.Finding {
	return domain.Finding{Rule: rule, Severity: sev, Message: msg, File: file}
}

func pass(rule, msg string) domain.Finding {
	return finding(rule, domain.SeverityPass, msg, "")
}

// vcsUnavailable is the degraded finding emitted by checks that need the
// version-control collaborator when the tree is not a checkout.
func vcsUnavailable(rule string) domain.Finding {
	return finding(rule, domain.SeverityWarning,
		"not a version-control checkout; skipping tracked-file checks", "")
}
