package service

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SuggestionRule ties a category name to the keywords that hint at it.
type SuggestionRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

type suggestionRulesFile struct {
	Categories []SuggestionRule `yaml:"categories"`
}

// DefaultSuggestionRules is used when no rules file is configured. Order
// breaks confidence ties.
var DefaultSuggestionRules = []SuggestionRule{
	{Name: "Salary", Keywords: []string{"salary", "wage", "payroll", "income"}},
	{Name: "Freelance", Keywords: []string{"freelance", "contract", "consulting"}},
	{Name: "Food & Dining", Keywords: []string{"restaurant", "cafe", "food", "dining", "lunch", "dinner", "breakfast"}},
	{Name: "Groceries", Keywords: []string{"supermarket", "grocery", "market", "food store"}},
	{Name: "Transportation", Keywords: []string{"uber", "taxi", "gas", "fuel", "parking", "metro", "bus"}},
	{Name: "Utilities", Keywords: []string{"electric", "water", "gas", "internet", "phone"}},
	{Name: "Entertainment", Keywords: []string{"movie", "cinema", "netflix", "spotify", "game"}},
	{Name: "Shopping", Keywords: []string{"amazon", "store", "shop", "mall"}},
	{Name: "Healthcare", Keywords: []string{"doctor", "hospital", "pharmacy", "medical"}},
	{Name: "Fitness", Keywords: []string{"gym", "fitness", "yoga", "sport"}},
}

// LoadSuggestionRules reads rules from a YAML file of the form
//
//	categories:
//	  - name: Groceries
//	    keywords: [supermarket, grocery]
func LoadSuggestionRules(path string) ([]SuggestionRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open suggestion rules: %w", err)
	}
	defer f.Close()

	return DecodeSuggestionRules(f)
}

func DecodeSuggestionRules(r io.Reader) ([]SuggestionRule, error) {
	var file suggestionRulesFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode suggestion rules: %w", err)
	}

	rules := make([]SuggestionRule, 0, len(file.Categories))
	for i, rule := range file.Categories {
		name := strings.TrimSpace(rule.Name)
		if name == "" {
			return nil, fmt.Errorf("decode suggestion rules: entry %d has no name", i)
		}

		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		rules = append(rules, SuggestionRule{Name: name, Keywords: keywords})
	}

	return rules, nil
}
