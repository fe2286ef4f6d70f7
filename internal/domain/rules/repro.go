package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nexus-infinity/nixvet/internal/domain"
)

// hardcodedPath matches absolute paths that tie a declarative config to one
// machine: user homes, temp mounts, and removable media.
var hardcodedPath = regexp.MustCompile(`(/home/[A-Za-z0-9._-]+|/tmp/|/mnt/)`)

const maxConfigReadSize = 1 << 20 // 1MB cap per config file.

// Reproducibility verifies that the dependency lock file exists and that no
// declarative config file hardcodes environment-specific absolute paths.
type Reproducibility struct{}

func (Reproducibility) Name() string { return "Reproducibility" }

func (c Reproducibility) Run(in Input) []domain.Finding {
	var out []domain.Finding

	lock := in.Config.LockFile
	if in.Tree.HasFile(lock) {
		out = append(out, pass(c.Name(), fmt.Sprintf("dependency lock %s present", lock)))
	} else {
		out = append(out, finding(c.Name(), domain.SeverityWarning,
			fmt.Sprintf("dependency lock %s is missing", lock), lock))
	}

	tainted := 0
	for _, f := range in.Tree.Files {
		if !strings.HasSuffix(f, ".nix") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(in.Tree.RootPath, filepath.FromSlash(f)))
		if err != nil {
			continue
		}
		if len(data) > maxConfigReadSize {
			data = data[:maxConfigReadSize]
		}
		if m := hardcodedPath.Find(data); m != nil {
			tainted++
			out = append(out, finding(c.Name(), domain.SeverityWarning,
				fmt.Sprintf("hardcoded absolute path %s in declarative config", string(m)), f))
		}
	}
	if tainted == 0 {
		out = append(out, pass(c.Name(), "no hardcoded absolute paths in declarative configs"))
	}

	return out
}
