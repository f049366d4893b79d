// Package csvimport turns uploaded tabular files into rows and judges each row
// against a column mapping. Nothing in here touches storage.
package csvimport

import (
	"fmt"
	"sort"

	"github.com/grachmannico95/fintrack-be/internal/domain"
)

// Field is a semantic transaction attribute a column can be mapped to.
type Field string

const (
	FieldDate        Field = "date"
	FieldAmount      Field = "amount"
	FieldType        Field = "type"
	FieldCategory    Field = "category"
	FieldDescription Field = "description"
	FieldCurrency    Field = "currency"
)

var knownFields = map[Field]bool{
	FieldDate:        true,
	FieldAmount:      true,
	FieldType:        true,
	FieldCategory:    true,
	FieldDescription: true,
	FieldCurrency:    true,
}

// ColumnMapping maps a field to a zero-based column index. Unmapped fields are absent.
type ColumnMapping map[Field]int

func (m ColumnMapping) Index(f Field) (int, bool) {
	idx, ok := m[f]
	return idx, ok
}

// Validate checks that date and amount are mapped and every index addresses
// one of headerCount columns.
func (m ColumnMapping) Validate(headerCount int) error {
	for _, required := range []Field{FieldDate, FieldAmount} {
		if _, ok := m[required]; !ok {
			return fmt.Errorf("%w: %s column is required", domain.ErrInvalidMapping, required)
		}
	}

	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	for _, name := range fields {
		f := Field(name)
		if !knownFields[f] {
			return fmt.Errorf("%w: unknown field %q", domain.ErrInvalidMapping, name)
		}
		if idx := m[f]; idx < 0 || idx >= headerCount {
			return fmt.Errorf("%w: %s column %d out of range (file has %d columns)",
				domain.ErrInvalidMapping, name, idx, headerCount)
		}
	}

	return nil
}
