package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-infinity/nixvet/internal/adapters/inbound/cli"
	"github.com/nexus-infinity/nixvet/internal/domain"
)

// cleanFixture lays out a configuration tree that passes every check except
// the version-control degradations (the temp dir is not a git checkout).
func cleanFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"flake.nix":               "{ outputs = { ... }: { }; }",
		"flake.lock":              "{}",
		"README.md":               "# infra",
		"modules/README.md":       "module docs",
		"modules/base.nix":        "{ services.openssh.enable = true; }",
		"hosts/README.md":         "host docs",
		"hosts/gateway.nix":       "{ networking.hostName = \"gateway\"; }",
		"docs/runbooks/deploy.md": "steps",
		"scripts/check.sh":        "#!/bin/sh",
		"overlays/default.nix":    "final: prev: { }",
		"secrets/.gitignore":      "*\n!.gitignore\n",
		"secrets/README.md":       "managed out of band",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidate_CleanTreeJSON(t *testing.T) {
	root := cleanFixture(t)

	out, err := runCLI(t, "validate", "--path", root, "--json")
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, domain.VerdictReady, report.Verdict)
	assert.Equal(t, 3, report.Summary.Warnings)
	assert.Zero(t, report.Summary.Errors)
}

func TestValidate_CriticalFindingExitsTwo(t *testing.T) {
	root := cleanFixture(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "home", "alice"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "home", "alice", "notes.txt"), []byte("x"), 0o644))

	_, err := runCLI(t, "validate", "--path", root, "--json")
	require.Error(t, err)

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
}

func TestValidate_MissingDirsBlocked(t *testing.T) {
	root := cleanFixture(t)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "hosts")))

	_, err := runCLI(t, "validate", "--path", root, "--json")

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
}

func TestValidate_WarnThresholdFlag(t *testing.T) {
	root := cleanFixture(t)

	// Three degradation warnings; a threshold of 2 drops to caution but
	// still exits zero.
	out, err := runCLI(t, "validate", "--path", root, "--json", "--warn-threshold", "2")
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, domain.VerdictReadyWithCaution, report.Verdict)
}

func TestValidate_SARIFOutput(t *testing.T) {
	root := cleanFixture(t)

	out, err := runCLI(t, "validate", "--path", root, "--sarif")
	require.NoError(t, err)

	var log map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &log))
	assert.Equal(t, "2.1.0", log["version"])
}

func TestValidate_TextOutputContainsVerdict(t *testing.T) {
	root := cleanFixture(t)

	out, err := runCLI(t, "validate", "--path", root)
	require.NoError(t, err)
	assert.Contains(t, out, "READY")
	assert.Contains(t, out, "Pre-Deployment Checklist")
}

func TestValidate_RejectsPositionalArgs(t *testing.T) {
	_, err := runCLI(t, "validate", "extra")
	require.Error(t, err)

	var exitErr *cli.ExitError
	assert.False(t, errors.As(err, &exitErr))
}
