package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/nexus-infinity/nixvet/internal/domain"
)

const fileName = ".nixvet.yaml"

// Loader implements domain.ConfigLoader. Precedence: defaults, then
// .nixvet.yaml, then NIXVET_* environment variables.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// envOverrides mirrors the tunables exposed through the environment.
// Pointer fields distinguish "unset" from zero values.
type envOverrides struct {
	WarnThreshold *int    `env:"NIXVET_WARN_THRESHOLD"`
	SecretsDir    *string `env:"NIXVET_SECRETS_DIR"`
	ManifestFile  *string `env:"NIXVET_MANIFEST"`
	LockFile      *string `env:"NIXVET_LOCK"`
}

// Load reads .nixvet.yaml from root. A missing file yields the defaults.
func (l *Loader) Load(root string) (domain.ValidatorConfig, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(root, fileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.ValidatorConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults apply
	default:
		return domain.ValidatorConfig{}, err
	}

	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return domain.ValidatorConfig{}, fmt.Errorf("parsing environment: %w", err)
	}
	if o.WarnThreshold != nil {
		cfg.WarnThreshold = *o.WarnThreshold
	}
	if o.SecretsDir != nil {
		cfg.SecretsDir = *o.SecretsDir
	}
	if o.ManifestFile != nil {
		cfg.ManifestFile = *o.ManifestFile
	}
	if o.LockFile != nil {
		cfg.LockFile = *o.LockFile
	}

	if err := cfg.Validate(); err != nil {
		return domain.ValidatorConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
