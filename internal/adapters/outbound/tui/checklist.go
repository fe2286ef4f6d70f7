package tui

import "strings"

// checklistItems is the static pre-deployment reminder block appended to
// every report. Presentation only; it carries no validation logic.
var checklistItems = []string{
	"nix flake check passes on a clean checkout",
	"nixos-rebuild build --flake .#<host> completes for every host",
	"secrets are provisioned outside the tracked tree",
	"console or out-of-band access to the target host is confirmed",
	"a known-good generation is available to roll back to",
}

// Checklist renders the static pre-deployment checklist.
func Checklist() string {
	var b strings.Builder
	b.WriteString("  " + sectionStyle.Render("Pre-Deployment Checklist") + "\n")
	for _, item := range checklistItems {
		b.WriteString("    " + dimStyle.Render("• "+item) + "\n")
	}
	return b.String()
}
