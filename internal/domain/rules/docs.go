package rules

import (
	"fmt"
	"strings"

	"github.com/nexus-infinity/nixvet/internal/domain"
)

// Documentation verifies that required docs (top-level README, build
// manifest) exist and that recommended docs (runbook directory, per-subsystem
// READMEs) are in place.
type Documentation struct{}

func (Documentation) Name() string { return "Documentation" }

func (c Documentation) Run(in Input) []domain.Finding {
	var out []domain.Finding

	if hasRootReadme(in.Tree) {
		out = append(out, pass(c.Name(), "top-level README present"))
	} else {
		out = append(out, finding(c.Name(), domain.SeverityError,
			"top-level README is missing", "README.md"))
	}

	manifest := in.Config.ManifestFile
	if in.Tree.HasFile(manifest) {
		out = append(out, pass(c.Name(), fmt.Sprintf("build manifest %s documented in tree", manifest)))
	} else {
		out = append(out, finding(c.Name(), domain.SeverityError,
			fmt.Sprintf("build manifest %s is missing", manifest), manifest))
	}

	if in.Config.RunbookDir != "" {
		if in.Tree.HasDir(in.Config.RunbookDir) {
			out = append(out, pass(c.Name(), fmt.Sprintf("runbook directory %s/ present", in.Config.RunbookDir)))
		} else {
			out = append(out, finding(c.Name(), domain.SeverityWarning,
				fmt.Sprintf("runbook directory %s/ is missing", in.Config.RunbookDir), in.Config.RunbookDir))
		}
	}

	for _, dir := range in.Config.RequiredDirs {
		if !in.Tree.HasDir(dir) {
			// DirectoryStructure already reports the missing directory.
			continue
		}
		if hasReadmeUnder(in.Tree, dir) {
			out = append(out, pass(c.Name(), fmt.Sprintf("%s/ has its own README", dir)))
		} else {
			out = append(out, finding(c.Name(), domain.SeverityWarning,
				fmt.Sprintf("%s/ has no README", dir), dir))
		}
	}

	return out
}

func hasRootReadme(tree *domain.TreeSnapshot) bool {
	for _, f := range tree.Files {
		if !strings.Contains(f, "/") && strings.EqualFold(f, "readme.md") {
			return true
		}
	}
	return false
}

func hasReadmeUnder(tree *domain.TreeSnapshot, dir string) bool {
	prefix := dir + "/"
	for _, f := range tree.Files {
		if strings.HasPrefix(f, prefix) && strings.EqualFold(f[len(prefix):], "readme.md") {
			return true
		}
	}
	return false
}
