package main

import (
	"fmt"
	"io"
	"os"

	"github.com/SeakMengs/CertVerify/internal/certcsv"
	"github.com/SeakMengs/CertVerify/internal/database"
	"github.com/SeakMengs/CertVerify/internal/service"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Bulk import certificates from a CSV file",
	Long: `Parse a CSV file in the template format and create one certificate per row.

The whole file is parsed before anything is written; a malformed row aborts
the import. During upload a failing row (for example a duplicate number) is
reported and the remaining rows are still imported.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the CSV import template",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := io.WriteString(cmd.OutOrStdout(), certcsv.Template())
		return err
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample certificates into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, logger, closeFn, err := openStore()
		if err != nil {
			return err
		}
		defer closeFn()

		n, err := database.Seed(cmd.Context(), store, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d certificates\n", n)
		return nil
	},
}

func runImport(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}

	inputs, err := certcsv.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("CSV parse error: %w", err)
	}

	store, logger, closeFn, err := openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	result := service.NewCertificateService(store, logger).BulkImport(cmd.Context(), inputs)
	printBulkResult(cmd.OutOrStdout(), result)

	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d rows failed", len(result.Failed), len(inputs))
	}
	return nil
}

func printBulkResult(w io.Writer, result service.BulkResult) {
	fmt.Fprintf(w, "%d certificates imported\n", result.Success)
	for _, f := range result.Failed {
		fmt.Fprintf(w, "row %d (%s): %s\n", f.Row, f.Data.CertificateNumber, f.Error)
	}
}
