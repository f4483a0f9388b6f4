package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stash/internal/app"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the trusted cache record for a file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, _ := cmd.Flags().GetBool("location")

			return c.app.Inspect(cmd.Context(), args[0], app.InspectOptions{
				ShowLocation: location,
			})
		},
	}
	cmd.Flags().BoolP("location", "l", false, "Also print the record's path on disk")
	return cmd
}
