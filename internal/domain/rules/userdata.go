package rules

import (
	"fmt"
	"path"
	"strings"

	"github.com/nexus-infinity/nixvet/internal/domain"
)

// homeSubtrees are directory names that indicate a user's home directory was
// committed into the configuration tree.
var homeSubtrees = []string{
	"home",
	"Users",
	".ssh",
	".cache",
	".mozilla",
	".local",
	".gnupg",
}

// privateKeyNames are basenames of SSH private key material.
var privateKeyNames = map[string]bool{
	"id_rsa":     true,
	"id_ed25519": true,
	"id_ecdsa":   true,
	"id_dsa":     true,
}

// historyNames are shell/tool history and cache artifacts that leak from a
// user session.
var historyNames = map[string]bool{
	".bash_history":   true,
	".zsh_history":    true,
	".python_history": true,
	".lesshst":        true,
	".viminfo":        true,
	".wget-hsts":      true,
}

// UserData detects user home-directory subtrees and scattered user artifacts
// in the configuration tree. A home subtree is an unconditional deployment
// blocker; scattered artifacts are errors (key material) or warnings.
type UserData struct{}

func (UserData) Name() string { return "UserData" }

func (c UserData) Run(in Input) []domain.Finding {
	var out []domain.Finding

	for _, dir := range homeSubtrees {
		if in.Tree.HasDir(dir) {
			out = append(out, finding(c.Name(), domain.SeverityCritical,
				fmt.Sprintf("home-directory subtree %s/ present in tree", dir), dir))
		}
	}

	for _, f := range in.Tree.Files {
		base := path.Base(f)
		switch {
		case privateKeyNames[base]:
			out = append(out, finding(c.Name(), domain.SeverityError,
				fmt.Sprintf("SSH private key %s in tree", base), f))
		case historyNames[base]:
			out = append(out, finding(c.Name(), domain.SeverityWarning,
				fmt.Sprintf("user artifact %s in tree", base), f))
		case strings.HasSuffix(base, ".sqlite") && strings.Contains(f, "cache"):
			out = append(out, finding(c.Name(), domain.SeverityWarning,
				"cache database in tree", f))
		}
	}

	if len(out) == 0 {
		out = append(out, pass(c.Name(), "no user data found in tree"))
	}
	return out
}
