package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shinelaptops/storefront/internal/catalog"
	"github.com/shinelaptops/storefront/internal/report"
)

var (
	reportOut  string
	reportDate string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the admin report workbook",
	Long: `Writes the admin overview (dashboard counts, complaints, warranties,
employees and monthly sales) to an XLSX workbook.`,
	Example: `  storefront report --out report.xlsx
  storefront report --date 2024-06-01`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportOut, "out", "storefront-report.xlsx", "Output file path")
	reportCmd.Flags().StringVar(&reportDate, "date", "", "Evaluate warranties as of this date (format: YYYY-MM-DD, default today)")
}

func runReport(cmd *cobra.Command, args []string) error {
	now := time.Now()
	if reportDate != "" {
		parsed, err := time.Parse(catalog.DateLayout, reportDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", reportDate, err)
		}
		now = parsed
	}

	f, err := os.Create(reportOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", reportOut, err)
	}

	if err := report.Write(f, store, now); err != nil {
		f.Close()
		os.Remove(reportOut)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", reportOut, err)
	}

	logger.Info().Str("file", reportOut).Str("as_of", now.Format(catalog.DateLayout)).Msg("Report written")
	return nil
}
