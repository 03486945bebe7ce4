package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sales-dashboard/cmd/salesctl/output"
	"sales-dashboard/internal/dataset"
)

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated record set as CSV",
		Long: `Generate synthetic sales records and write them in the CSV layout the
web dashboard loads with DATASET_CSV_FILE.

Examples:
  salesctl generate -o records.csv                # 60 records
  salesctl generate --size 5000 --seed 42 -o big.csv
  salesctl generate                               # CSV on stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.size < 0 {
				return fmt.Errorf("--size must not be negative, got %d", opts.size)
			}
			records := dataset.Generate(dataset.GenerateOptions{Count: opts.size, Seed: opts.seed, Now: opts.now()})

			if outFile == "" || outFile == "-" {
				return dataset.WriteCSV(cmd.OutOrStdout(), records)
			}

			f, err := os.Create(outFile)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outFile, err)
			}
			if err := dataset.WriteCSV(f, records); err != nil {
				f.Close()
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", outFile, err)
			}

			output.Success(cmd.ErrOrStderr(), "Wrote %d records to %s", len(records), outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file (default stdout)")
	return cmd
}
