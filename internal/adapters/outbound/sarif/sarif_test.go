package sarif_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/nexus-infinity/nixvet/internal/adapters/outbound/sarif"
	"github.com/nexus-infinity/nixvet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromReport_OmitsPassFindings(t *testing.T) {
	report := domain.BuildReport([]domain.Finding{
		{Rule: "BackupFiles", Severity: domain.SeverityPass, Message: "no backup files in tree"},
		{Rule: "BackupFiles", Severity: domain.SeverityWarning, Message: "backup or stale copy should not be committed", File: "a.bak"},
	}, domain.DefaultWarnThreshold)

	log := sarif.FromReport(report, "dev")

	require.Len(t, log.Runs, 1)
	require.Len(t, log.Runs[0].Results, 1)
	assert.Equal(t, "BackupFiles", log.Runs[0].Results[0].RuleID)
}

func TestFromReport_LevelMapping(t *testing.T) {
	report := domain.BuildReport([]domain.Finding{
		{Rule: "GitClean", Severity: domain.SeverityInfo, Message: "untracked file", File: "scratch.nix"},
		{Rule: "Reproducibility", Severity: domain.SeverityWarning, Message: "lock missing"},
		{Rule: "Documentation", Severity: domain.SeverityError, Message: "readme missing"},
		{Rule: "SecretScan", Severity: domain.SeverityCritical, Message: "tracked key", File: "id_rsa"},
	}, domain.DefaultWarnThreshold)

	results := sarif.FromReport(report, "dev").Runs[0].Results

	require.Len(t, results, 4)
	assert.Equal(t, "note", results[0].Level)
	assert.Equal(t, "warning", results[1].Level)
	assert.Equal(t, "error", results[2].Level)
	assert.Equal(t, "error", results[3].Level)
}

func TestFromReport_LocationURI(t *testing.T) {
	report := domain.BuildReport([]domain.Finding{
		{Rule: "SecretScan", Severity: domain.SeverityCritical, Message: "tracked key", File: "hosts/id_rsa"},
	}, domain.DefaultWarnThreshold)

	results := sarif.FromReport(report, "dev").Runs[0].Results

	require.Len(t, results, 1)
	require.Len(t, results[0].Locations, 1)
	assert.Equal(t, "hosts/id_rsa", results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI)
}

func TestEncoder_EmitsValidJSON(t *testing.T) {
	report := domain.BuildReport([]domain.Finding{
		{Rule: "BackupFiles", Severity: domain.SeverityWarning, Message: "stale copy", File: "a.bak"},
	}, domain.DefaultWarnThreshold)

	var buf bytes.Buffer
	require.NoError(t, sarif.NewEncoder(&buf).Encode(sarif.FromReport(report, "1.0.0")))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sarif.Version, decoded["version"])
}
