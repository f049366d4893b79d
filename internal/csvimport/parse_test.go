package csvimport

import (
	"testing"

	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	data := []byte("Date, Amount ,Type\n2025-01-01,1000,IN\n\nbad-date,500,OUT\n2025-01-03,-5\n")

	table, err := ParseCSV(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Amount", "Type"}, table.Headers)
	assert.Equal(t, 3, table.TotalRows())
	assert.Equal(t, []string{"2025-01-03", "-5"}, table.Rows[2])
}

func TestParseCSV_StripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date,Amount\n2025-01-01,1\n")...)

	table, err := ParseCSV(data)
	require.NoError(t, err)
	assert.Equal(t, "Date", table.Headers[0])
}

func TestParseCSV_Windows1252(t *testing.T) {
	data := []byte("Date,Amount,Note\n2025-01-01,10,Caf\xe9\n")

	table, err := ParseCSV(data)
	require.NoError(t, err)
	assert.Equal(t, "Café", table.Rows[0][2])
}

func TestParseCSV_Errors(t *testing.T) {
	_, err := ParseCSV([]byte("Date,Amount\n"))
	assert.ErrorIs(t, err, domain.ErrInsufficientData)

	_, err = ParseCSV([]byte(""))
	assert.ErrorIs(t, err, domain.ErrInsufficientData)

	_, err = ParseCSV([]byte("Date,Amount\n\"2025-01-01,10\n"))
	assert.ErrorIs(t, err, domain.ErrCSVParse)
}

func TestParseFile_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Date", "Amount", "Type"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"2025-01-01", "1000", "IN"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"2025-01-02", "20", "OUT"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := ParseFile("statement.XLSX", buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Amount", "Type"}, table.Headers)
	assert.Equal(t, [][]string{{"2025-01-01", "1000", "IN"}, {"2025-01-02", "20", "OUT"}}, table.Rows)
}

func TestParseFile_InvalidXLSX(t *testing.T) {
	_, err := ParseFile("broken.xlsx", []byte("not a zip"))
	assert.ErrorIs(t, err, domain.ErrCSVParse)
}
