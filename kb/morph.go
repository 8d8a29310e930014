package kb

import "strings"

// Morphy is a rule-based English lemmatizer covering the regular noun
// inflections. It exists to fill the base-form table for variant lookups.
// The builder checks every produced base form against the lexicon before
// recording it, so a form the rules mangle yields no table row rather than
// a wrong one.
type Morphy struct {
	exceptions map[string]string
}

// NewMorphy returns a lemmatizer with the common irregular plurals baked in.
func NewMorphy() *Morphy {
	return &Morphy{
		exceptions: map[string]string{
			"children": "child",
			"feet":     "foot",
			"geese":    "goose",
			"men":      "man",
			"women":    "woman",
			"mice":     "mouse",
			"people":   "person",
			"teeth":    "tooth",
			"lives":    "life",
			"wives":    "wife",
			"knives":   "knife",
		},
	}
}

// suffix rules tried in order, first applicable wins
var morphRules = []struct {
	suffix      string
	replacement string
	minStem     int
}{
	{"ches", "ch", 2},
	{"shes", "sh", 2},
	{"sses", "ss", 2},
	{"xes", "x", 2},
	{"zes", "z", 2},
	{"ies", "y", 2},
	{"ves", "f", 2},
	{"s", "", 3},
}

// BaseForm returns the singular base of a regular plural, or word unchanged.
func (m *Morphy) BaseForm(word string) string {
	if base, ok := m.exceptions[word]; ok {
		return base
	}

	// Words ending in "ss" or "us" are not plurals ("boss", "status").
	if strings.HasSuffix(word, "ss") || strings.HasSuffix(word, "us") {
		return word
	}

	for _, rule := range morphRules {
		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, rule.suffix)
		if len(stem) < rule.minStem {
			continue
		}
		return stem + rule.replacement
	}

	return word
}
