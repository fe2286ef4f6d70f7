package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"

	"github.com/nexus-infinity/nixvet/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent).Align(lipgloss.Center)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	passTagStyle  = lipgloss.NewStyle().Foreground(success)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	critTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true).Underline(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))

	verdictColors = map[domain.Verdict]lipgloss.Color{
		domain.VerdictReady:             success,
		domain.VerdictReadyWithCaution:  warning,
		domain.VerdictBlocked:           danger,
		domain.VerdictDeploymentBlocked: danger,
	}
)

// Render produces the full deterministic report: findings grouped by rule in
// battery order, the summary counters, the verdict box, and the static
// pre-deployment checklist.
func Render(report *domain.Report) string {
	var b strings.Builder

	title := headerStyle.Render("nixvet")
	subtitle := dimStyle.Render("Pre-Deployment Validation")
	verdictStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(verdictColor(report.Verdict)).
		Render(string(report.Verdict))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdictStyled))
	b.WriteString("\n\n")

	for _, rule := range ruleOrder(report.Findings) {
		renderRuleSection(&b, rule, report.Findings)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	renderSummary(&b, report.Summary)

	b.WriteString("\n")
	b.WriteString(Checklist())
	return b.String()
}

// ruleOrder returns distinct rule names in first-seen order, which is the
// fixed battery order.
func ruleOrder(findings []domain.Finding) []string {
	seen := make(map[string]bool)
	var order []string
	for _, f := range findings {
		if !seen[f.Rule] {
			seen[f.Rule] = true
			order = append(order, f.Rule)
		}
	}
	return order
}

func renderRuleSection(b *strings.Builder, rule string, findings []domain.Finding) {
	b.WriteString("  " + sectionStyle.Render(humanizeRule(rule)) + "\n")
	for _, f := range findings {
		if f.Rule != rule {
			continue
		}
		line := "    " + severityTag(f.Severity) + " "
		if f.File != "" {
			line += fileStyle.Render(f.File) + "  "
		}
		line += dimStyle.Render(f.Message)
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

// humanizeRule turns a rule identifier like "SecretScan" into "Secret Scan".
func humanizeRule(rule string) string {
	return strings.Join(camelcase.Split(rule), " ")
}

func severityTag(sev domain.Severity) string {
	switch sev {
	case domain.SeverityPass:
		return passTagStyle.Render("pass ")
	case domain.SeverityInfo:
		return infoTagStyle.Render("info ")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityCritical:
		return critTagStyle.Render("CRITICAL")
	default:
		return infoTagStyle.Render(string(sev))
	}
}

func renderSummary(b *strings.Builder, s domain.Summary) {
	fmt.Fprintf(b, "  %s  %s  %s  %s\n",
		passStyle.Render(fmt.Sprintf("%d passed", s.Passed)),
		warnTagStyle.Render(fmt.Sprintf("%d warnings", s.Warnings)),
		errorTagStyle.Render(fmt.Sprintf("%d errors", s.Errors)),
		critTagStyle.Render(fmt.Sprintf("%d critical", s.Critical)),
	)
}

func verdictColor(v domain.Verdict) lipgloss.Color {
	if c, ok := verdictColors[v]; ok {
		return c
	}
	return fg
}
