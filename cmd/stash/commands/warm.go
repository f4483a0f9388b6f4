package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stash/internal/app"
)

func (c *CLI) newWarmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warm [files...]",
		Short: "Hydrate cache records for source files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")

			return c.app.Warm(cmd.Context(), args, app.WarmOptions{
				Jobs: jobs,
			})
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Number of concurrent workers (0 = number of CPUs)")
	return cmd
}
