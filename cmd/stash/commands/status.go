package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stash/internal/app"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [files...]",
		Short: "Show the cache state of source files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "plain"
			if ci {
				outputMode = "plain"
			}

			return c.app.Status(cmd.Context(), args, app.StatusOptions{
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, styled, or plain")
	cmd.Flags().Bool("ci", false, "Use plain output mode (shorthand for --output-mode=plain)")
	return cmd
}
