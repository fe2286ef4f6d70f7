package cli

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/nexus-infinity/nixvet/internal/adapters/outbound/tui"
)

func newGateCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "gate -- <command> [args...]",
		Short: "Validate, then run a command if the tree is deployment ready",
		Long: "Run the full validation battery; if the verdict is READY or " +
			"READY_WITH_CAUTION, execute the given command (typically the image " +
			"builder) and propagate its exit status. Otherwise print the report " +
			"and exit with the verdict's code.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runValidation(path, -1)
			if err != nil {
				return fmt.Errorf("gate validation failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.Render(report))

			if code := report.Verdict.ExitCode(); code != 0 {
				return &ExitError{Code: code}
			}

			c := exec.Command(args[0], args[1:]...)
			c.Dir = path
			c.Stdin = cmd.InOrStdin()
			c.Stdout = cmd.OutOrStdout()
			c.Stderr = cmd.ErrOrStderr()
			if err := c.Run(); err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					return &ExitError{Code: exitErr.ExitCode()}
				}
				return fmt.Errorf("running gated command: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Configuration checkout to validate")

	return cmd
}
