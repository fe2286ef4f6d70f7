package domain

import (
	"path"
	"regexp"
	"sort"
)

// TreeSnapshot is the result of walking a configuration checkout. Paths are
// slash-separated and relative to RootPath; Files is sorted so reports stay
// byte-identical across runs.
type TreeSnapshot struct {
	RootPath string          `json:"root_path"`
	Files    []string        `json:"files"`
	Dirs     map[string]bool `json:"-"`
}

// NewTreeSnapshot builds a snapshot from a file list, deriving the directory
// set from the file paths.
func NewTreeSnapshot(rootPath string, files []string) *TreeSnapshot {
	t := &TreeSnapshot{
		RootPath: rootPath,
		Files:    append([]string(nil), files...),
		Dirs:     make(map[string]bool),
	}
	sort.Strings(t.Files)
	for _, f := range t.Files {
		for dir := path.Dir(f); dir != "." && dir != "/"; dir = path.Dir(dir) {
			t.Dirs[dir] = true
		}
	}
	return t
}

// HasFile reports whether the relative path exists in the snapshot.
func (t *TreeSnapshot) HasFile(rel string) bool {
	i := sort.SearchStrings(t.Files, rel)
	return i < len(t.Files) && t.Files[i] == rel
}

// HasDir reports whether the relative directory exists in the snapshot.
func (t *TreeSnapshot) HasDir(rel string) bool {
	return t.Dirs[rel]
}

// RepoScanner walks a configuration checkout and returns its tree snapshot.
type RepoScanner interface {
	Scan(root string, exclude ...string) (*TreeSnapshot, error)
}

// ContentMatch is one line hit from a tracked-content search.
type ContentMatch struct {
	Path string
	Line int
	Text string
}

// VersionControl is the read-only collaborator over the version-control
// checkout. Implementations must never mutate the tree.
type VersionControl interface {
	// ListTrackedFiles returns the sorted paths known to the index.
	ListTrackedFiles() ([]string, error)
	// SearchTrackedContent scans tracked file contents for the pattern,
	// skipping binary files.
	SearchTrackedContent(pattern *regexp.Regexp) ([]ContentMatch, error)
	// HasUncommittedChanges reports whether the working tree differs from HEAD.
	HasUncommittedChanges() (bool, error)
	// UntrackedFiles returns files in the working tree not covered by the
	// index or exclusion rules.
	UntrackedFiles() ([]string, error)
}

// VersionControlOpener opens the version-control collaborator for a checkout
// root. A non-nil error means the root is not a usable checkout; callers
// degrade to warnings rather than aborting.
type VersionControlOpener interface {
	Open(root string) (VersionControl, error)
}

// ConfigLoader loads the validator tunables for a checkout root.
type ConfigLoader interface {
	Load(root string) (ValidatorConfig, error)
}
