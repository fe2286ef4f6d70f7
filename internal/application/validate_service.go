package application

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nexus-infinity/nixvet/internal/domain"
	"github.com/nexus-infinity/nixvet/internal/domain/rules"
)

// ValidateService runs the rule battery over a configuration checkout and
// aggregates the findings into a deployment-readiness report.
type ValidateService struct {
	scanner domain.RepoScanner
	vcs     domain.VersionControlOpener
	config  domain.ConfigLoader
}

// NewValidateService creates a ValidateService with all required dependencies.
func NewValidateService(
	scanner domain.RepoScanner,
	vcs domain.VersionControlOpener,
	config domain.ConfigLoader,
) *ValidateService {
	return &ValidateService{scanner: scanner, vcs: vcs, config: config}
}

// Validate loads the checkout's config and runs the battery.
func (s *ValidateService) Validate(root string) (*domain.Report, error) {
	cfg, err := s.config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return s.ValidateWithConfig(root, cfg)
}

// ValidateWithConfig runs the battery with an explicit config, letting
// callers override tunables before the run. The full battery always runs to
// completion; only an unreadable root aborts.
func (s *ValidateService) ValidateWithConfig(root string, cfg domain.ValidatorConfig) (*domain.Report, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	if _, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("reading repository root: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	tree, err := s.scanner.Scan(absRoot, cfg.ExcludePaths...)
	if err != nil {
		return nil, fmt.Errorf("scanning tree: %w", err)
	}

	// Not being a checkout is a degraded condition, never a crash: checks
	// that need the collaborator emit a warning instead.
	vcs, err := s.vcs.Open(absRoot)
	if err != nil {
		vcs = nil
	}

	in := rules.Input{Tree: tree, VCS: vcs, Config: cfg}
	var findings []domain.Finding
	for _, check := range rules.Battery() {
		findings = append(findings, check.Run(in)...)
	}

	return domain.BuildReport(findings, cfg.WarnThreshold), nil
}
