package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/metrics"
	"sales-dashboard/internal/models"
)

// Load produces the session's record store: from cfg.CSVFile when set,
// otherwise generated.
func Load(ctx context.Context, cfg config.DatasetConfig, logger *slog.Logger, m *metrics.Registry) ([]models.Record, error) {
	start := time.Now()

	if cfg.CSVFile == "" {
		records := Generate(GenerateOptions{Count: cfg.Size, Seed: cfg.Seed})
		logger.Info("generated record store",
			"records", len(records),
			"seed", cfg.Seed,
			"duration", time.Since(start),
		)
		return records, nil
	}

	logger.Info("loading record store", "filename", cfg.CSVFile)
	result, err := LoadCSV(ctx, cfg.CSVFile)
	if err != nil {
		return nil, fmt.Errorf("load csv %s: %w", cfg.CSVFile, err)
	}

	if m != nil {
		m.SkippedRows.Add(float64(result.Skipped))
	}
	if result.Skipped > 0 {
		logger.Warn("skipped invalid csv rows", "skipped", result.Skipped)
	}

	duration := time.Since(start)
	logger.Info("csv processing complete",
		"records", len(result.Records),
		"duration", duration,
		"rate", fmt.Sprintf("%.0f records/sec", float64(len(result.Records))/duration.Seconds()),
	)
	return result.Records, nil
}
