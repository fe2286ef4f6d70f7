// Package gitindex implements the version-control collaborator on top of
// go-git, strictly in read-only query modes.
package gitindex

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/nexus-infinity/nixvet/internal/domain"
)

const maxScanSize = 1 << 20 // 1MB cap for tracked content scans.

// Opener implements domain.VersionControlOpener using go-git.
type Opener struct{}

func NewOpener() *Opener {
	return &Opener{}
}

func (Opener) Open(root string) (domain.VersionControl, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}
	return &Index{repo: repo}, nil
}

// Index answers read-only queries against a git checkout: the tracked file
// list and contents come from the HEAD tree, the dirty/untracked state from
// the worktree status.
type Index struct {
	repo *git.Repository
}

func (x *Index) ListTrackedFiles() ([]string, error) {
	tree, err := x.headTree()
	if err != nil {
		return nil, err
	}

	var files []string
	err = tree.Files().ForEach(func(f *object.File) error {
		files = append(files, f.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking HEAD tree: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

func (x *Index) SearchTrackedContent(pattern *regexp.Regexp) ([]domain.ContentMatch, error) {
	tree, err := x.headTree()
	if err != nil {
		return nil, err
	}

	var matches []domain.ContentMatch
	err = tree.Files().ForEach(func(f *object.File) error {
		if f.Size > maxScanSize {
			return nil
		}
		if bin, err := f.IsBinary(); err != nil || bin {
			return nil
		}
		contents, err := f.Contents()
		if err != nil {
			return nil
		}
		for i, line := range strings.Split(contents, "\n") {
			if pattern.MatchString(line) {
				matches = append(matches, domain.ContentMatch{
					Path: f.Name,
					Line: i + 1,
					Text: strings.TrimSpace(line),
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning HEAD tree: %w", err)
	}

	return matches, nil
}

func (x *Index) HasUncommittedChanges() (bool, error) {
	status, err := x.worktreeStatus()
	if err != nil {
		return false, err
	}
	for _, st := range status {
		if st.Worktree == git.Untracked {
			continue
		}
		if st.Worktree != git.Unmodified || st.Staging != git.Unmodified {
			return true, nil
		}
	}
	return false, nil
}

func (x *Index) UntrackedFiles() ([]string, error) {
	status, err := x.worktreeStatus()
	if err != nil {
		return nil, err
	}
	var files []string
	for path, st := range status {
		if st.Worktree == git.Untracked {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

func (x *Index) headTree() (*object.Tree, error) {
	head, err := x.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}
	commit, err := x.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("reading HEAD commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("reading HEAD tree: %w", err)
	}
	return tree, nil
}

func (x *Index) worktreeStatus() (git.Status, error) {
	wt, err := x.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}
	return status, nil
}
