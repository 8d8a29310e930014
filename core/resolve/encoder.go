package resolve

import "github.com/oyemi/lexicon/model"

// Encoder assembles composite codes, handing out the per-superclass local
// sequence numbers. Counters advance in concept-visitation order, so the same
// snapshot walked in the same order always yields the same codes. Not safe
// for concurrent use; the build is single-threaded by design.
type Encoder struct {
	counters map[string]int
}

// NewEncoder creates an encoder with all counters at zero.
func NewEncoder() *Encoder {
	return &Encoder{counters: make(map[string]int)}
}

// Encode assigns the next local sequence number for the superclass and
// returns the assembled code. Each call consumes a number: one call per
// concept, not per lemma.
func (e *Encoder) Encode(superclass string, pos model.Pos, abstractness model.Abstractness, valence model.Valence) model.Code {
	e.counters[superclass]++
	return model.Code{
		Superclass:   superclass,
		Local:        e.counters[superclass],
		Pos:          pos,
		Abstractness: abstractness,
		Valence:      valence,
	}
}
