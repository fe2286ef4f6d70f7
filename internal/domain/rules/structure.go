package rules

import (
	"fmt"

	"github.com/nexus-infinity/nixvet/internal/domain"
)

// DirectoryStructure verifies that required and recommended subdirectories
// are present in the tree.
type DirectoryStructure struct{}

func (DirectoryStructure) Name() string { return "DirectoryStructure" }

func (c DirectoryStructure) Run(in Input) []domain.Finding {
	var out []domain.Finding
	for _, dir := range in.Config.RequiredDirs {
		if in.Tree.HasDir(dir) {
			out = append(out, pass(c.Name(), fmt.Sprintf("required directory %s/ present", dir)))
		} else {
			out = append(out, finding(c.Name(), domain.SeverityError,
				fmt.Sprintf("required directory %s/ is missing", dir), dir))
		}
	}
	for _, dir := range in.Config.RecommendedDirs {
		if in.Tree.HasDir(dir) {
			out = append(out, pass(c.Name(), fmt.Sprintf("recommended directory %s/ present", dir)))
		} else {
			out = append(out, finding(c.Name(), domain.SeverityWarning,
				fmt.Sprintf("recommended directory %s/ is missing", dir), dir))
		}
	}
	return out
}
