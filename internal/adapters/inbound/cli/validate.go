package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configAdapter "github.com/nexus-infinity/nixvet/internal/adapters/outbound/config"
	"github.com/nexus-infinity/nixvet/internal/adapters/outbound/gitindex"
	sarifAdapter "github.com/nexus-infinity/nixvet/internal/adapters/outbound/sarif"
	"github.com/nexus-infinity/nixvet/internal/adapters/outbound/scanner"
	"github.com/nexus-infinity/nixvet/internal/adapters/outbound/tui"
	"github.com/nexus-infinity/nixvet/internal/application"
	"github.com/nexus-infinity/nixvet/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		path          string
		jsonOutput    bool
		sarifOutput   bool
		warnThreshold int
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a configuration tree for deployment readiness",
		Long: "Run the full rule battery against a configuration checkout. Exits 0 when the " +
			"tree is ready (with or without caution), 1 when blocked, 2 when a critical " +
			"finding blocks deployment.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runValidation(path, warnThreshold)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			switch {
			case jsonOutput:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			case sarifOutput:
				log := sarifAdapter.FromReport(report, version)
				if err := sarifAdapter.NewEncoder(cmd.OutOrStdout()).Encode(log); err != nil {
					return err
				}
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.Render(report))
			}

			if code := report.Verdict.ExitCode(); code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Configuration checkout to validate")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&sarifOutput, "sarif", false, "Output the report as SARIF 2.1.0")
	cmd.Flags().IntVar(&warnThreshold, "warn-threshold", -1,
		"Warnings tolerated before READY becomes READY_WITH_CAUTION (-1 uses config)")

	return cmd
}

// runValidation wires the adapters and runs the battery. A warnThreshold of
// -1 keeps the loaded config's value.
func runValidation(path string, warnThreshold int) (*domain.Report, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	loader := configAdapter.New()
	cfg, err := loader.Load(absPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if warnThreshold >= 0 {
		cfg.WarnThreshold = warnThreshold
	}

	svc := application.NewValidateService(scanner.New(), gitindex.NewOpener(), loader)
	return svc.ValidateWithConfig(absPath, cfg)
}
