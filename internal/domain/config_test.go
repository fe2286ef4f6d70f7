package domain_test

import (
	"testing"

	"github.com/nexus-infinity/nixvet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, 5, cfg.WarnThreshold)
	assert.Equal(t, []string{"modules", "hosts"}, cfg.RequiredDirs)
	assert.Equal(t, "secrets", cfg.SecretsDir)
	assert.Equal(t, "flake.nix", cfg.ManifestFile)
	assert.Equal(t, "flake.lock", cfg.LockFile)
	require.NoError(t, cfg.Validate())
}

func TestValidatorConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ValidatorConfig)
	}{
		{"negative threshold", func(c *domain.ValidatorConfig) { c.WarnThreshold = -1 }},
		{"empty secrets dir", func(c *domain.ValidatorConfig) { c.SecretsDir = "" }},
		{"empty manifest", func(c *domain.ValidatorConfig) { c.ManifestFile = "" }},
		{"empty lock", func(c *domain.ValidatorConfig) { c.LockFile = "" }},
		{"empty required dir", func(c *domain.ValidatorConfig) { c.RequiredDirs = []string{""} }},
		{"empty recommended dir", func(c *domain.ValidatorConfig) { c.RecommendedDirs = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
