package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grachmannico95/fintrack-be/internal/csvimport"
	"github.com/spf13/cobra"
)

type previewReport struct {
	File             string                  `json:"file"`
	Headers          []string                `json:"headers"`
	SuggestedMapping csvimport.ColumnMapping `json:"suggestedMapping"`
	AppliedMapping   csvimport.ColumnMapping `json:"appliedMapping"`
	Ambiguities      []csvimport.Ambiguity   `json:"ambiguities"`
	TotalRows        int                     `json:"totalRows"`
	ValidRows        int                     `json:"validRows"`
	InvalidRows      int                     `json:"invalidRows"`
	Rows             []csvimport.RowOutcome  `json:"rows"`
}

func newPreviewCmd() *cobra.Command {
	var (
		mapping map[string]int
		limit   int
		onlyBad bool
	)

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Print headers, suggested mapping and per-row issues as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			table, err := csvimport.ParseFile(filepath.Base(path), data)
			if err != nil {
				return err
			}

			match := csvimport.MatchHeaders(table.Headers)

			applied := match.Mapping
			if len(mapping) > 0 {
				applied = csvimport.ColumnMapping{}
				for field, idx := range mapping {
					applied[csvimport.Field(field)] = idx
				}
				if err := applied.Validate(len(table.Headers)); err != nil {
					return err
				}
			}

			eval := csvimport.Evaluate(table.Rows, applied, limit)

			rows := eval.Outcomes
			if onlyBad {
				rows = []csvimport.RowOutcome{}
				for _, o := range eval.Outcomes {
					if len(o.Issues) > 0 {
						rows = append(rows, o)
					}
				}
			}

			log.Debug(cmd.Context(), "Preview computed",
				"file", path,
				"total_rows", table.TotalRows(),
			)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(previewReport{
				File:             path,
				Headers:          table.Headers,
				SuggestedMapping: match.Mapping,
				AppliedMapping:   applied,
				Ambiguities:      match.Ambiguities,
				TotalRows:        table.TotalRows(),
				ValidRows:        eval.Valid,
				InvalidRows:      eval.Invalid,
				Rows:             rows,
			})
		},
	}

	cmd.Flags().StringToIntVar(&mapping, "mapping", nil, "explicit mapping, e.g. date=0,amount=1,type=2")
	cmd.Flags().IntVar(&limit, "limit", -1, "number of rows to report (-1 for all)")
	cmd.Flags().BoolVar(&onlyBad, "invalid-only", false, "report only rows with issues")

	return cmd
}
