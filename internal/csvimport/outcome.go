package csvimport

// RowOutcome is the verdict for one data row. Row is the spreadsheet row
// number, so the first data row after the header is 2.
type RowOutcome struct {
	Row    int      `json:"row"`
	Cells  []string `json:"cells"`
	Issues []string `json:"issues"`
}

type Evaluation struct {
	Outcomes []RowOutcome
	Valid    int
	Invalid  int
}

// Evaluate validates every row and keeps the outcomes of the first limit rows.
// A negative limit keeps them all.
func Evaluate(rows [][]string, mapping ColumnMapping, limit int) Evaluation {
	eval := Evaluation{Outcomes: []RowOutcome{}}

	for i, row := range rows {
		issues := ValidateRow(row, mapping)
		if len(issues) == 0 {
			eval.Valid++
		} else {
			eval.Invalid++
		}

		if limit < 0 || i < limit {
			eval.Outcomes = append(eval.Outcomes, RowOutcome{
				Row:    i + 2,
				Cells:  row,
				Issues: issues,
			})
		}
	}

	return eval
}
