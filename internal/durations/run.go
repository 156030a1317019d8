package durations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gofrs/flock"

	"videoinsights/internal/dataset"
	"videoinsights/internal/fileutil"
	"videoinsights/internal/logging"
)

// Options configures one enrichment run.
type Options struct {
	DataPath  string
	TakesPath string
	// DryRun reports matches without rewriting DataPath.
	DryRun bool
	// Backup copies DataPath to DataPath+".bak" before it is rewritten.
	Backup bool
	Out    io.Writer
	Logger *slog.Logger
}

// Run loads both files, enriches the dataset and overwrites DataPath with the
// result. Lookup misses are reported but do not fail the run.
func Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.DataPath == "" {
		return Summary{}, errors.New("dataset path is required")
	}
	if opts.TakesPath == "" {
		return Summary{}, errors.New("results path is required")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := logging.NewComponentLogger(opts.Logger, "durations")

	ds, err := dataset.Load(opts.DataPath)
	if err != nil {
		return Summary{}, err
	}
	results, err := dataset.LoadResults(opts.TakesPath)
	if err != nil {
		return Summary{}, err
	}
	lookup := BuildLookup(results)
	logger.Debug("duration lookup built",
		logging.String(logging.FieldEventType, "duration_lookup_built"),
		logging.Int("results", len(results)),
		logging.Int("durations", len(lookup)))

	fmt.Fprintf(out, "Adding durations for %d videos...\n", len(ds.Videos))
	summary, err := Enrich(ds, lookup)
	if err != nil {
		return Summary{}, err
	}
	for _, outcome := range summary.Outcomes {
		if outcome.Matched {
			fmt.Fprintf(out, "  ✓ %s: %s\n", outcome.VideoID, outcome.Formatted)
			if outcome.Previous != "" && outcome.Previous != outcome.Seconds {
				logger.Debug("duration replaced",
					logging.String(logging.FieldVideoID, outcome.VideoID),
					logging.String("previous", outcome.Previous.String()),
					logging.String("duration_seconds", outcome.Seconds.String()))
			}
			continue
		}
		fmt.Fprintf(out, "  ✗ %s: Duration not found\n", outcome.VideoID)
		logger.Debug("duration not found", logging.String(logging.FieldVideoID, outcome.VideoID))
	}
	if summary.Missing > 0 {
		logging.WarnWithContext(logger, "some videos have no duration", "duration_lookup_missed",
			logging.Int("missing", summary.Missing),
			logging.String(logging.FieldErrorHint, "check that "+opts.TakesPath+" covers every video id"),
			logging.String(logging.FieldImpact, "unmatched videos keep no duration fields"))
	}

	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	if opts.DryRun {
		fmt.Fprintf(out, "\nDry run: %s not modified\n", opts.DataPath)
		return summary, nil
	}

	if err := save(ds, opts, logger); err != nil {
		return Summary{}, err
	}
	fmt.Fprintf(out, "\n✅ Updated %s\n", opts.DataPath)
	logger.Info("dataset updated",
		logging.String(logging.FieldEventType, "dataset_updated"),
		logging.String(logging.FieldPath, opts.DataPath),
		logging.Int("matched", summary.Matched),
		logging.Int("missing", summary.Missing))
	return summary, nil
}

func save(ds *dataset.Dataset, opts Options, logger *slog.Logger) error {
	lock := flock.New(opts.DataPath + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire dataset lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another run is already writing %s", opts.DataPath)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release dataset lock", logging.Error(err))
		}
	}()

	if opts.Backup {
		backup, err := fileutil.Backup(opts.DataPath)
		if err != nil {
			return fmt.Errorf("back up dataset: %w", err)
		}
		logger.Info("dataset backed up", logging.String(logging.FieldPath, backup))
	}
	return ds.Save(opts.DataPath)
}
