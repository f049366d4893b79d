package csvimport

import (
	"regexp"
	"strings"
)

type fieldPattern struct {
	field   Field
	pattern *regexp.Regexp
}

// Evaluation order decides which field wins a header first.
var fieldPatterns = []fieldPattern{
	{FieldDate, regexp.MustCompile(`(?i)date|time|when|occurred|txdate`)},
	{FieldAmount, regexp.MustCompile(`(?i)amount|value|sum|total|price`)},
	{FieldType, regexp.MustCompile(`(?i)type|kind|direction|category`)},
	{FieldDescription, regexp.MustCompile(`(?i)note|description|memo|detail|comment`)},
	{FieldCategory, regexp.MustCompile(`(?i)category|cat|class`)},
	{FieldCurrency, regexp.MustCompile(`(?i)currency|ccy`)},
}

// Ambiguity reports a header whose text satisfies more than one field pattern.
type Ambiguity struct {
	Column int     `json:"column"`
	Header string  `json:"header"`
	Fields []Field `json:"fields"`
}

type MatchResult struct {
	Mapping     ColumnMapping `json:"suggestedMapping"`
	Ambiguities []Ambiguity   `json:"ambiguities"`
}

// MatchHeaders suggests a mapping by scanning headers left to right. A field
// takes the first header matching its pattern and is never reassigned.
// Headers matching several patterns are reported, not resolved.
func MatchHeaders(headers []string) MatchResult {
	result := MatchResult{
		Mapping:     ColumnMapping{},
		Ambiguities: []Ambiguity{},
	}

	for idx, header := range headers {
		normalized := strings.ToLower(strings.TrimSpace(header))
		if normalized == "" {
			continue
		}

		var matched []Field
		for _, fp := range fieldPatterns {
			if !fp.pattern.MatchString(normalized) {
				continue
			}
			matched = append(matched, fp.field)
			if _, taken := result.Mapping[fp.field]; !taken {
				result.Mapping[fp.field] = idx
			}
		}

		if len(matched) > 1 {
			result.Ambiguities = append(result.Ambiguities, Ambiguity{
				Column: idx,
				Header: header,
				Fields: matched,
			})
		}
	}

	return result
}
