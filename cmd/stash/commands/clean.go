package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stash/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the project's cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				All: all,
			})
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Remove the whole stash directory, not just the cache")
	return cmd
}
