package rules

import (
	"fmt"
	"path"
	"strings"

	"github.com/nexus-infinity/nixvet/internal/domain"
)

// backupSuffixes mark backups and stale editor copies that should never be
// part of a declarative tree.
var backupSuffixes = []string{
	".bak",
	".backup",
	".old",
	".orig",
	".swp",
	".swo",
	"~",
}

// BackupFiles reports backup/stale file copies and verifies that the root
// build manifest exists. A tree without its manifest cannot be built at all,
// so that absence is critical.
type BackupFiles struct{}

func (BackupFiles) Name() string { return "BackupFiles" }

func (c BackupFiles) Run(in Input) []domain.Finding {
	var out []domain.Finding

	backups := 0
	for _, f := range in.Tree.Files {
		if isBackupName(path.Base(f)) {
			backups++
			out = append(out, finding(c.Name(), domain.SeverityWarning,
				"backup or stale copy should not be committed", f))
		}
	}
	if backups == 0 {
		out = append(out, pass(c.Name(), "no backup files in tree"))
	}

	manifest := in.Config.ManifestFile
	if in.Tree.HasFile(manifest) {
		out = append(out, pass(c.Name(), fmt.Sprintf("build manifest %s present", manifest)))
	} else {
		out = append(out, finding(c.Name(), domain.SeverityCritical,
			fmt.Sprintf("root build manifest %s is missing", manifest), manifest))
	}

	return out
}

func isBackupName(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range backupSuffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}
