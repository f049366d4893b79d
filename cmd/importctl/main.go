// Command importctl inspects import files and category suggestions offline.
package main

import (
	"os"

	"github.com/grachmannico95/fintrack-be/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	log      = logger.NewNop()

	rootCmd = &cobra.Command{
		Use:   "importctl",
		Short: "Inspect transaction import files without touching any store.",
		Long: `importctl runs the import pipeline's header matching and row validation
against a local CSV or XLSX file, and the keyword category suggester against
free text. Nothing is persisted.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logger.NewDevelopment(logLevel)
		},
	}
)

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.AddCommand(newPreviewCmd(), newSuggestCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
