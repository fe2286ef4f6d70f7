package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nexus-infinity/nixvet/internal/domain"
)

var skipDirs = map[string]bool{
	".git":   true,
	".jj":    true,
	"result": true, // nix build output links
}

// TreeScanner implements domain.RepoScanner by walking the filesystem.
type TreeScanner struct{}

func New() *TreeScanner {
	return &TreeScanner{}
}

func (s *TreeScanner) Scan(root string, exclude ...string) (*domain.TreeSnapshot, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	extraSkip := make(map[string]bool, len(exclude))
	for _, p := range exclude {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	var files []string
	dirs := make(map[string]bool)

	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absRoot, path)
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath == "." {
				return nil
			}
			if skipDirs[d.Name()] || extraSkip[relPath] {
				return filepath.SkipDir
			}
			dirs[relPath] = true
			return nil
		}

		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return &domain.TreeSnapshot{RootPath: absRoot, Files: files, Dirs: dirs}, nil
}
