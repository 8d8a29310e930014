package model

// Lemma is one surface word form belonging to a concept.
type Lemma struct {
	Word      string   `json:"word"`
	Frequency int      `json:"frequency"`
	Antonyms  []string `json:"antonyms,omitempty"`
}

// Concept is one word-sense from the knowledge base. HypernymPaths are
// ordered concept-first, root-last; their enumeration order is the order
// the knowledge base reported them in and is significant for superclass
// resolution.
type Concept struct {
	ID            string     `json:"id"`
	PosTag        string     `json:"pos"`
	HypernymPaths [][]string `json:"hypernym_paths,omitempty"`
	PosScore      float64    `json:"pos_score"`
	NegScore      float64    `json:"neg_score"`
	Lemmas        []Lemma    `json:"lemmas"`
}

// Pos returns the POS digit for the concept's tag.
func (c *Concept) Pos() Pos {
	return PosFromTag(c.PosTag)
}

// Ancestors returns the union of all ancestors across every hypernym path,
// including the concept itself when it appears in its own paths.
func (c *Concept) Ancestors() map[string]struct{} {
	ancestors := make(map[string]struct{})
	for _, path := range c.HypernymPaths {
		for _, name := range path {
			ancestors[name] = struct{}{}
		}
	}
	return ancestors
}
