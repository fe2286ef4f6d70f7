package rules

import (
	"fmt"
	"path"
	"strings"

	"github.com/nexus-infinity/nixvet/internal/domain"
)

// SecretsDir checks the hygiene of the dedicated secrets directory: it must
// carry its own exclusion file, and nothing besides that file and a README
// may be tracked inside it.
type SecretsDir struct{}

func (SecretsDir) Name() string { return "SecretsDir" }

func (c SecretsDir) Run(in Input) []domain.Finding {
	var out []domain.Finding
	dir := in.Config.SecretsDir

	if !in.Tree.HasDir(dir) {
		out = append(out, finding(c.Name(), domain.SeverityWarning,
			fmt.Sprintf("no dedicated secrets directory %s/", dir), dir))
		return out
	}

	exclusion := dir + "/.gitignore"
	if in.Tree.HasFile(exclusion) {
		out = append(out, pass(c.Name(), fmt.Sprintf("exclusion file %s present", exclusion)))
	} else {
		out = append(out, finding(c.Name(), domain.SeverityWarning,
			fmt.Sprintf("secrets directory has no exclusion file %s", exclusion), exclusion))
	}

	if in.VCS == nil {
		out = append(out, vcsUnavailable(c.Name()))
		return out
	}

	tracked, err := in.VCS.ListTrackedFiles()
	if err != nil {
		out = append(out, finding(c.Name(), domain.SeverityWarning,
			fmt.Sprintf("cannot list tracked files: %v", err), ""))
		return out
	}

	leaked := 0
	prefix := dir + "/"
	for _, f := range tracked {
		if !strings.HasPrefix(f, prefix) {
			continue
		}
		if isSecretsDirExempt(path.Base(f)) {
			continue
		}
		leaked++
		out = append(out, finding(c.Name(), domain.SeverityCritical,
			"tracked file inside secrets directory", f))
	}
	if leaked == 0 {
		out = append(out, pass(c.Name(), fmt.Sprintf("no tracked secrets under %s/", dir)))
	}

	return out
}

// isSecretsDirExempt reports whether a file may legitimately be tracked
// inside the secrets directory.
func isSecretsDirExempt(base string) bool {
	lower := strings.ToLower(base)
	return lower == ".gitignore" || strings.HasPrefix(lower, "readme")
}
