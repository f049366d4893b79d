package main

import (
	"encoding/json"

	"github.com/grachmannico95/fintrack-be/internal/service"
	"github.com/grachmannico95/fintrack-be/internal/storage"
	"github.com/spf13/cobra"
)

func newSuggestCmd() *cobra.Command {
	var (
		note      string
		merchant  string
		rulesFile string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest categories for a note and merchant using the keyword rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := service.DefaultSuggestionRules
			if rulesFile != "" {
				loaded, err := service.LoadSuggestionRules(rulesFile)
				if err != nil {
					return err
				}
				rules = loaded
			}

			store := storage.NewMemoryStore()
			svc := service.NewSuggestionService(store, store, rules, log)

			suggestions, err := svc.Suggest(cmd.Context(), service.SuggestionQuery{
				Note:     note,
				Merchant: merchant,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(suggestions)
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "transaction note or description")
	cmd.Flags().StringVar(&merchant, "merchant", "", "merchant name")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rules file (defaults to the built-in rules)")

	return cmd
}
