package rules

import (
	"fmt"

	"github.com/nexus-infinity/nixvet/internal/domain"
)

// GitClean checks the working tree state: uncommitted changes are a warning,
// untracked files are reported as informational findings that do not count
// toward any verdict.
type GitClean struct{}

func (GitClean) Name() string { return "GitClean" }

func (c GitClean) Run(in Input) []domain.Finding {
	if in.VCS == nil {
		return []domain.Finding{vcsUnavailable(c.Name())}
	}

	var out []domain.Finding

	dirty, err := in.VCS.HasUncommittedChanges()
	switch {
	case err != nil:
		out = append(out, finding(c.Name(), domain.SeverityWarning,
			fmt.Sprintf("cannot read working tree status: %v", err), ""))
	case dirty:
		out = append(out, finding(c.Name(), domain.SeverityWarning,
			"uncommitted changes in working tree", ""))
	default:
		out = append(out, pass(c.Name(), "working tree matches HEAD"))
	}

	untracked, err := in.VCS.UntrackedFiles()
	if err != nil {
		out = append(out, finding(c.Name(), domain.SeverityWarning,
			fmt.Sprintf("cannot list untracked files: %v", err), ""))
		return out
	}
	for _, f := range untracked {
		out = append(out, finding(c.Name(), domain.SeverityInfo, "untracked file", f))
	}

	return out
}
