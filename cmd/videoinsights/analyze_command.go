package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"videoinsights/internal/agreement"
	"videoinsights/internal/dataset"
	"videoinsights/internal/logging"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var dataFlag string
	var format string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report tag and host-response agreement across sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "analyze")

			format = strings.ToLower(strings.TrimSpace(format))
			switch format {
			case "text", "table", "json":
			default:
				return fmt.Errorf("unsupported format %q (use text, table or json)", format)
			}

			dataPath, err := resolvePath(dataFlag, cfg.Paths.DataFile)
			if err != nil {
				return fmt.Errorf("resolve dataset path: %w", err)
			}
			ds, err := dataset.Load(dataPath)
			if err != nil {
				return err
			}

			report, err := agreement.Analyze(ds.Videos, cfg.AgreementOptions())
			if err != nil {
				return fmt.Errorf("analyze %s: %w", dataPath, err)
			}
			logger.Debug("agreement report built",
				logging.String(logging.FieldEventType, "agreement_report_built"),
				logging.String(logging.FieldPath, dataPath),
				logging.Int("videos", len(ds.Videos)),
				logging.Int("videos_considered", report.VideosConsidered),
				logging.Int("videos_skipped", report.VideosSkipped),
				logging.Int("topics", report.Topics))

			switch format {
			case "json":
				return writeJSON(cmd, report)
			case "table":
				return writeReportTables(cmd, report)
			default:
				return agreement.RenderText(cmd.OutOrStdout(), report)
			}
		},
	}

	cmd.Flags().StringVar(&dataFlag, "data", "", "Dataset file (default: paths.data_file)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, table or json")
	return cmd
}

func writeReportTables(cmd *cobra.Command, report agreement.Report) error {
	out := cmd.OutOrStdout()
	sections := []string{
		renderTopicTable("Topics with 100% Host Agreement Across All Models", "Agreement", report.PerfectAgreement),
		renderTopicTable("Topics with 100% Host Disagreement Across All Models", "Disagreement", report.PerfectDisagreement),
		renderTopicTable("Most Polarizing Topics (Mixed Host Response)", "Mixed", report.Polarizing),
	}
	for _, section := range sections {
		if _, err := fmt.Fprintf(out, "%s\n\n", section); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "Videos where all %d models perfectly agree on host response: %s\n",
		len(report.Sources), agreement.FormatUnanimity(report.Unanimity))
	return err
}
