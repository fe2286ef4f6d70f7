package rules_test

import (
	"testing"

	"github.com/nexus-infinity/nixvet/internal/domain"
	"github.com/nexus-infinity/nixvet/internal/domain/rules"
	"github.com/stretchr/testify/assert"
)

func TestSecretScan_ContentHitIsSingleWarning(t *testing.T) {
	files := cleanTreeFiles()
	files["modules/service.nix"] = `{ api_key = "abc123"; }`
	tree := newTree(t, files)

	findings := rules.SecretScan{}.Run(rules.Input{Tree: tree, VCS: cleanVCS(files), Config: domain.DefaultConfig()})

	assert.Equal(t, 1, countSeverity(findings, domain.SeverityWarning))
	assert.Zero(t, countSeverity(findings, domain.SeverityCritical))
}

func TestSecretScan_OneWarningPerFilePerPattern(t *testing.T) {
	files := cleanTreeFiles()
	files["modules/service.nix"] = "api_key = \"a\"\napi-key = \"b\"\napiKey = \"c\""
	tree := newTree(t, files)

	findings := rules.SecretScan{}.Run(rules.Input{Tree: tree, VCS: cleanVCS(files), Config: domain.DefaultConfig()})

	assert.Equal(t, 1, countSeverity(findings, domain.SeverityWarning),
		"repeated hits of one pattern in one file are one finding")
}

func TestSecretScan_TrackedKeyFilenameIsCritical(t *testing.T) {
	files := cleanTreeFiles()
	files["hosts/id_ed25519"] = "tracked key"
	tree := newTree(t, files)

	findings := rules.SecretScan{}.Run(rules.Input{Tree: tree, VCS: cleanVCS(files), Config: domain.DefaultConfig()})

	assert.Equal(t, 1, countSeverity(findings, domain.SeverityCritical))
	s := domain.Summarize(findings)
	assert.Equal(t, domain.VerdictDeploymentBlocked, domain.DecideVerdict(s, domain.DefaultWarnThreshold))
}

func TestSecretScan_PemAndKeySuffixesAreCritical(t *testing.T) {
	files := cleanTreeFiles()
	files["modules/tls/server.pem"] = "cert"
	files["modules/tls/server.key"] = "key"
	tree := newTree(t, files)

	findings := rules.SecretScan{}.Run(rules.Input{Tree: tree, VCS: cleanVCS(files), Config: domain.DefaultConfig()})

	assert.Equal(t, 2, countSeverity(findings, domain.SeverityCritical))
}

func TestSecretScan_AgeOutsideSecretsDirIsCritical(t *testing.T) {
	files := cleanTreeFiles()
	files["hosts/wifi.age"] = "encrypted"
	tree := newTree(t, files)

	findings := rules.SecretScan{}.Run(rules.Input{Tree: tree, VCS: cleanVCS(files), Config: domain.DefaultConfig()})

	assert.Equal(t, 1, countSeverity(findings, domain.SeverityCritical))
}

func TestSecretScan_ReadmeIsExemptFromContentScan(t *testing.T) {
	files := cleanTreeFiles()
	files["README.md"] = "Rotate the admin password after install."
	tree := newTree(t, files)

	findings := rules.SecretScan{}.Run(rules.Input{Tree: tree, VCS: cleanVCS(files), Config: domain.DefaultConfig()})

	assert.Zero(t, countSeverity(findings, domain.SeverityWarning))
}

func TestSecretScan_DegradesWithoutVCS(t *testing.T) {
	tree := newTree(t, cleanTreeFiles())

	findings := rules.SecretScan{}.Run(rules.Input{Tree: tree, VCS: nil, Config: domain.DefaultConfig()})

	assert.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
}

func TestSecretScan_CleanTreePasses(t *testing.T) {
	files := cleanTreeFiles()
	tree := newTree(t, files)

	findings := rules.SecretScan{}.Run(rules.Input{Tree: tree, VCS: cleanVCS(files), Config: domain.DefaultConfig()})

	assert.Equal(t, 2, countSeverity(findings, domain.SeverityPass))
	assert.Zero(t, countSeverity(findings, domain.SeverityWarning))
}
