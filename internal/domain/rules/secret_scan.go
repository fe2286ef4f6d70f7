package rules

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/nexus-infinity/nixvet/internal/domain"
)

// contentPattern is one keyword heuristic applied to tracked file contents.
type contentPattern struct {
	name string
	re   *regexp.Regexp
}

// contentPatterns drive the tracked-content scan. Hits are warnings: the
// keywords are heuristic and may name option keys rather than leaked values.
var contentPatterns = []contentPattern{
	{"password", regexp.MustCompile(`(?i)password`)},
	{"secret", regexp.MustCompile(`(?i)\bsecret`)},
	{"api key", regexp.MustCompile(`(?i)api[_-]?key`)},
	{"token", regexp.MustCompile(`(?i)\btoken\b`)},
	{"private key", regexp.MustCompile(`(?i)private[_-]?key`)},
	{"PEM block", regexp.MustCompile(`BEGIN (RSA |EC |OPENSSH )?PRIVATE KEY`)},
}

// secretNameSuffixes and secretBasenames flag tracked filenames that are
// almost certainly key material. A tracked match is critical.
var secretNameSuffixes = []string{".key", ".pem"}

var secretBasenames = map[string]bool{
	"id_rsa":     true,
	"id_ed25519": true,
	"id_ecdsa":   true,
	"id_dsa":     true,
}

// SecretScan scans version-control-tracked files for secret-like content
// keywords and secret-like filenames. Content hits are warnings; tracked
// secret-like filenames are critical.
type SecretScan struct{}

func (SecretScan) Name() string { return "SecretScan" }

func (c SecretScan) Run(in Input) []domain.Finding {
	if in.VCS == nil {
		return []domain.Finding{vcsUnavailable(c.Name())}
	}

	var out []domain.Finding

	hits := 0
	for _, p := range contentPatterns {
		matches, err := in.VCS.SearchTrackedContent(p.re)
		if err != nil {
			out = append(out, finding(c.Name(), domain.SeverityWarning,
				fmt.Sprintf("content scan for %s failed: %v", p.name, err), ""))
			continue
		}
		// One finding per (pattern, file): every hit line in the same file
		// is the same signal.
		seen := map[string]bool{}
		for _, m := range matches {
			if c.isExempt(in, m.Path) || seen[m.Path] {
				continue
			}
			seen[m.Path] = true
			hits++
			out = append(out, finding(c.Name(), domain.SeverityWarning,
				fmt.Sprintf("possible %s in tracked content (line %d)", p.name, m.Line), m.Path))
		}
	}
	if hits == 0 {
		out = append(out, pass(c.Name(), "no secret-like content in tracked files"))
	}

	tracked, err := in.VCS.ListTrackedFiles()
	if err != nil {
		out = append(out, finding(c.Name(), domain.SeverityWarning,
			fmt.Sprintf("cannot list tracked files: %v", err), ""))
		return out
	}

	names := 0
	for _, f := range tracked {
		if isSecretFilename(path.Base(f), f, in.Config.SecretsDir) {
			names++
			out = append(out, finding(c.Name(), domain.SeverityCritical,
				"secret-like filename tracked by version control", f))
		}
	}
	if names == 0 {
		out = append(out, pass(c.Name(), "no secret-like filenames tracked"))
	}

	return out
}

// isExempt skips paths that legitimately mention secret keywords: the secrets
// exclusion file, README-like docs, and the validator's own config.
func (SecretScan) isExempt(in Input, p string) bool {
	base := strings.ToLower(path.Base(p))
	if strings.HasPrefix(base, "readme") {
		return true
	}
	if base == ".nixvet.yaml" {
		return true
	}
	return p == in.Config.SecretsDir+"/.gitignore"
}

func isSecretFilename(base, full, secretsDir string) bool {
	if secretBasenames[base] {
		return true
	}
	lower := strings.ToLower(base)
	for _, s := range secretNameSuffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	// Encrypted .age blobs belong under the secrets directory, which has its
	// own hygiene check; anywhere else a tracked .age file is a leak vector.
	if strings.HasSuffix(lower, ".age") && !strings.HasPrefix(full, secretsDir+"/") {
		return true
	}
	return false
}
