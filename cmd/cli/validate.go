package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinelaptops/storefront/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check catalog integrity",
	Long: `Reports dangling references, negative prices and stock, stock flags that
disagree with quantities and malformed warranty dates. Exits non-zero when any
error-level issue is found.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	issues := store.Validate()
	for _, issue := range issues {
		fmt.Fprintln(cmd.OutOrStdout(), issue.String())
	}

	if catalog.HasErrors(issues) {
		return errors.New("catalog has integrity errors")
	}
	logger.Info().Int("warnings", len(issues)).Msg("Catalog is consistent")
	return nil
}
