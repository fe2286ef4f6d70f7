package scanner_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/nexus-infinity/nixvet/internal/adapters/outbound/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, rel := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte("x"), 0o644))
	}
}

func TestTreeScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "flake.nix", "modules/editors.nix", "hosts/soma.nix")

	s := scanner.New()
	tree, err := s.Scan(root)
	require.NoError(t, err)

	assert.True(t, tree.HasFile("flake.nix"))
	assert.True(t, tree.HasDir("modules"))
	assert.True(t, tree.HasDir("hosts"))
	assert.True(t, sort.StringsAreSorted(tree.Files), "files should be sorted for deterministic reports")
}

func TestTreeScanner_SkipsGitMetadata(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "flake.nix", ".git/config", ".git/objects/ab/cdef", "result/etc/os-release")

	s := scanner.New()
	tree, err := s.Scan(root)
	require.NoError(t, err)

	for _, f := range tree.Files {
		assert.NotContains(t, f, ".git/")
		assert.NotContains(t, f, "result/")
	}
	assert.False(t, tree.HasDir(".git"))
}

func TestTreeScanner_CustomExcludePaths(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "flake.nix", "archive/old.nix")

	s := scanner.New()
	tree, err := s.Scan(root, "archive")
	require.NoError(t, err)

	assert.False(t, tree.HasFile("archive/old.nix"))
	assert.False(t, tree.HasDir("archive"))
}

func TestTreeScanner_RecordsEmptyDirs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "flake.nix")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "secrets"), 0o755))

	s := scanner.New()
	tree, err := s.Scan(root)
	require.NoError(t, err)

	assert.True(t, tree.HasDir("secrets"), "empty directories should appear in the snapshot")
}
