package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is a parsed upload: the first row as headers, the rest as data rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (t *Table) TotalRows() int {
	return len(t.Rows)
}

// ParseFile picks the decoder from the file extension; anything that is not
// .xlsx is read as CSV.
func ParseFile(fileName string, data []byte) (*Table, error) {
	if strings.EqualFold(filepath.Ext(fileName), ".xlsx") {
		return ParseXLSX(data)
	}
	return ParseCSV(data)
}

// ParseCSV reads comma separated data. Input that is not valid UTF-8 is
// decoded as Windows-1252.
func ParseCSV(data []byte) (*Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var src io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCSVParse, err)
		}
		if isBlank(record) {
			continue
		}
		records = append(records, record)
	}

	return newTable(records)
}

// ParseXLSX reads the first worksheet of a workbook.
func ParseXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCSVParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrInsufficientData
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCSVParse, err)
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		records = append(records, row)
	}

	return newTable(records)
}

func newTable(records [][]string) (*Table, error) {
	if len(records) < 2 {
		return nil, domain.ErrInsufficientData
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	return &Table{
		Headers: headers,
		Rows:    records[1:],
	}, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
