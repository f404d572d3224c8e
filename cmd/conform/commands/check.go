package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/conform/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Run the configured conformance rules against the workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			failOnWarning, _ := cmd.Flags().GetBool("fail-on-warning")

			return c.app.Check(cmd.Context(), app.CheckOptions{
				Dir:           dir,
				FailOnWarning: failOnWarning,
			})
		},
	}
	cmd.Flags().Bool("fail-on-warning", false, "Exit non-zero when warning-severity violations are found")
	return cmd
}
