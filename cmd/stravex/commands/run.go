package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stravex/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run --period YYYY.MM [--include CODE ...]",
		Short: "Export one report per kept entity",
		Long: `Drives the STRAVIS client to export one report per kept entity.

Before running, log into STRAVIS and leave its main window open. Once the
countdown starts, bring that window to the foreground and do not touch the
mouse or keyboard until the run ends. --yes confirms both.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			period, _ := cmd.Flags().GetString("period")
			include, _ := cmd.Flags().GetStringSlice("include")
			selectBatch, _ := cmd.Flags().GetInt("select-batch")
			confirmed, _ := cmd.Flags().GetBool("yes")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			opts := app.RunOptions{
				ConfigPath:  c.configPath,
				Period:      period,
				Include:     include,
				SelectBatch: selectBatch,
				Confirmed:   confirmed,
				OutputMode:  outputMode,
				CI:          ci,
			}
			if cmd.Flags().Changed("grace") {
				grace, _ := cmd.Flags().GetDuration("grace")
				opts.Grace = &grace
			}

			return c.app.Run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringP("period", "p", "", "Reporting period, e.g. 2025.03")
	cmd.Flags().StringSlice("include", nil, "Entity codes to export (default: the catalog defaults)")
	cmd.Flags().Int("select-batch", 0, "Rows covered by the select-all gesture (default: run.select_batch)")
	cmd.Flags().Duration("grace", 0, "Countdown before the first input (default: timing.grace_period)")
	cmd.Flags().BoolP("yes", "y", false, "Confirm you are logged into STRAVIS and will focus its window")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	_ = cmd.MarkFlagRequired("period")
	return cmd
}
