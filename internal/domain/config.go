package domain

import "fmt"

// DefaultWarnThreshold is the number of warnings tolerated before READY
// becomes READY_WITH_CAUTION. Strictly more than this many warnings demotes
// the verdict.
const DefaultWarnThreshold = 5

// ValidatorConfig holds the tunables for a validation run, loaded from
// .nixvet.yaml with environment and flag overrides applied on top.
type ValidatorConfig struct {
	WarnThreshold   int      `yaml:"warn_threshold"   json:"warn_threshold"`
	RequiredDirs    []string `yaml:"required_dirs"    json:"required_dirs,omitempty"`
	RecommendedDirs []string `yaml:"recommended_dirs" json:"recommended_dirs,omitempty"`
	SecretsDir      string   `yaml:"secrets_dir"      json:"secrets_dir"`
	ManifestFile    string   `yaml:"manifest_file"    json:"manifest_file"`
	LockFile        string   `yaml:"lock_file"        json:"lock_file"`
	RunbookDir      string   `yaml:"runbook_dir"      json:"runbook_dir"`
	ExcludePaths    []string `yaml:"exclude_paths"    json:"exclude_paths,omitempty"`
}

// DefaultConfig returns the defaults for a flake-based NixOS tree.
func DefaultConfig() ValidatorConfig {
	return ValidatorConfig{
		WarnThreshold:   DefaultWarnThreshold,
		RequiredDirs:    []string{"modules", "hosts"},
		RecommendedDirs: []string{"docs", "scripts", "overlays"},
		SecretsDir:      "secrets",
		ManifestFile:    "flake.nix",
		LockFile:        "flake.lock",
		RunbookDir:      "docs/runbooks",
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ValidatorConfig) Validate() error {
	if c.WarnThreshold < 0 {
		return fmt.Errorf("warn_threshold must be >= 0 (got %d)", c.WarnThreshold)
	}
	if c.SecretsDir == "" {
		return fmt.Errorf("secrets_dir must not be empty")
	}
	if c.ManifestFile == "" {
		return fmt.Errorf("manifest_file must not be empty")
	}
	if c.LockFile == "" {
		return fmt.Errorf("lock_file must not be empty")
	}
	for i, d := range c.RequiredDirs {
		if d == "" {
			return fmt.Errorf("required_dirs[%d] must not be empty", i)
		}
	}
	for i, d := range c.RecommendedDirs {
		if d == "" {
			return fmt.Errorf("recommended_dirs[%d] must not be empty", i)
		}
	}
	return nil
}
