package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"videoinsights/internal/durations"
)

func newDurationsCommand(ctx *commandContext) *cobra.Command {
	var dataFlag string
	var takesFlag string
	var dryRun bool
	var backup bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "durations",
		Short: "Add video durations from the results file to the dataset",
		Long: `Look up every video of the dataset in the results file and record its
duration_seconds and duration_formatted ("M:SS"). Videos without a duration are
reported and left unchanged. The dataset file is overwritten in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			dataPath, err := resolvePath(dataFlag, cfg.Paths.DataFile)
			if err != nil {
				return fmt.Errorf("resolve dataset path: %w", err)
			}
			takesPath, err := resolvePath(takesFlag, cfg.Paths.TakesFile)
			if err != nil {
				return fmt.Errorf("resolve results path: %w", err)
			}

			var out io.Writer = cmd.OutOrStdout()
			if jsonOutput {
				out = io.Discard
			}
			summary, err := durations.Run(cmd.Context(), durations.Options{
				DataPath:  dataPath,
				TakesPath: takesPath,
				DryRun:    dryRun,
				Backup:    backup,
				Out:       out,
				Logger:    logger,
			})
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, summary)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataFlag, "data", "", "Dataset file to enrich (default: paths.data_file)")
	cmd.Flags().StringVar(&takesFlag, "takes", "", "Results file with durations (default: paths.takes_file)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report matches without writing the dataset")
	cmd.Flags().BoolVar(&backup, "backup", false, "Copy the dataset to <file>.bak before overwriting it")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the per-video outcome as JSON")
	return cmd
}
