package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sales-dashboard/cmd/salesctl/output"
	"sales-dashboard/internal/dataset"
	"sales-dashboard/internal/metrics"
	"sales-dashboard/internal/models"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	csvFile    string
	size       int
	seed       int64
	jsonOutput bool
	now        func() time.Time
	logger     *slog.Logger
	metrics    *metrics.Registry
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&globalOptions{
		now:     time.Now,
		logger:  slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
		metrics: metrics.NewRegistry(),
	})
}

func newRootCmdWith(opts *globalOptions) *cobra.Command {

	rootCmd := &cobra.Command{
		Use:   "salesctl",
		Short: "Sales dashboard from the command line",
		Long: `salesctl computes the sales dashboard views without the web server.

Records come from a CSV file (--csv) or are generated (--size, --seed) the
same way the web dashboard generates them.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.csvFile, "csv", "", "Load records from a CSV file instead of generating them")
	rootCmd.PersistentFlags().IntVar(&opts.size, "size", dataset.DefaultCount, "Number of records to generate")
	rootCmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "Generator seed (0 seeds from the clock)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddCommand(newSummaryCmd(opts), newGenerateCmd(opts))
	return rootCmd
}

// Execute runs the root command
func Execute() {
	if code := run(newRootCmd(), os.Stderr); code != 0 {
		os.Exit(code)
	}
}

func run(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		output.Error(stderr, "%v", err)
		return 1
	}
	return 0
}

func (o *globalOptions) records(ctx context.Context) ([]models.Record, error) {
	if o.csvFile != "" {
		result, err := dataset.LoadCSV(ctx, o.csvFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", o.csvFile, err)
		}
		return result.Records, nil
	}

	if o.size < 0 {
		return nil, fmt.Errorf("--size must not be negative, got %d", o.size)
	}
	return dataset.Generate(dataset.GenerateOptions{Count: o.size, Seed: o.seed, Now: o.now()}), nil
}
