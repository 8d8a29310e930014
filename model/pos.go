package model

// Pos is the part-of-speech digit used in the third code field.
type Pos int

const (
	Noun      Pos = 1
	Verb      Pos = 2
	Adjective Pos = 3
	Adverb    Pos = 4
)

// PosFromTag maps a knowledge-base POS tag to a Pos digit.
// Satellite adjectives ("s") collapse into Adjective. Unknown tags
// default to Noun, matching the bulk of the knowledge base.
func PosFromTag(tag string) Pos {
	switch tag {
	case "n":
		return Noun
	case "v":
		return Verb
	case "a", "s":
		return Adjective
	case "r":
		return Adverb
	default:
		return Noun
	}
}

// String returns a human-readable name for reports.
func (p Pos) String() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the four enumerated digits.
func (p Pos) Valid() bool {
	return p >= Noun && p <= Adverb
}
