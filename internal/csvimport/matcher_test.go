package csvimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchHeaders_Basic(t *testing.T) {
	result := MatchHeaders([]string{"Date", "Amount", "Type"})

	assert.Equal(t, ColumnMapping{
		FieldDate:   0,
		FieldAmount: 1,
		FieldType:   2,
	}, result.Mapping)
	assert.Empty(t, result.Ambiguities)
}

func TestMatchHeaders_FirstMatchWins(t *testing.T) {
	result := MatchHeaders([]string{"Posted Date", "Value Date", "Total", "Amount", "Memo", "Currency"})

	assert.Equal(t, 0, result.Mapping[FieldDate])
	assert.Equal(t, 1, result.Mapping[FieldAmount], "value date also matches the amount pattern")
	assert.Equal(t, 4, result.Mapping[FieldDescription])
	assert.Equal(t, 5, result.Mapping[FieldCurrency])

	if assert.Len(t, result.Ambiguities, 1) {
		assert.Equal(t, Ambiguity{
			Column: 1,
			Header: "Value Date",
			Fields: []Field{FieldDate, FieldAmount},
		}, result.Ambiguities[0])
	}
}

func TestMatchHeaders_CategoryHeaderIsAmbiguous(t *testing.T) {
	result := MatchHeaders([]string{"when", "price", "Category"})

	assert.Equal(t, 2, result.Mapping[FieldType])
	assert.Equal(t, 2, result.Mapping[FieldCategory])
	if assert.Len(t, result.Ambiguities, 1) {
		assert.Equal(t, []Field{FieldType, FieldCategory}, result.Ambiguities[0].Fields)
	}
}

func TestMatchHeaders_NoMatch(t *testing.T) {
	result := MatchHeaders([]string{"foo", "bar", ""})

	assert.Empty(t, result.Mapping)
	assert.NotNil(t, result.Mapping)
	assert.Empty(t, result.Ambiguities)
}

func TestMatchHeaders_Deterministic(t *testing.T) {
	headers := []string{"Txdate", "Sum", "Direction", "Detail", "Class", "CCY"}

	first := MatchHeaders(headers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, MatchHeaders(headers))
	}
}
