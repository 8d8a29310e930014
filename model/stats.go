package model

// Strength labels the magnitude of a lexical valence signal. It only feeds
// build reporting; the stored valence digit never depends on it.
type Strength int

const (
	None   Strength = 0
	Weak   Strength = 1
	Strong Strength = 2
)

// StrengthOf buckets a winning score: strong at 0.25 and above, weak at 0.1
// and above, none below.
func StrengthOf(score float64) Strength {
	switch {
	case score >= 0.25:
		return Strong
	case score >= 0.1:
		return Weak
	default:
		return None
	}
}

// BuildStats is the report the builder hands back after a run.
type BuildStats struct {
	Concepts     int
	Entries      int
	Words        int
	BaseForms    int
	AntonymPairs int
	Dropped      int

	// Per-concept valence distribution from the lexical stage.
	Neutral        int
	Positive       int
	Negative       int
	StrongSignals  int
	WeakSignals    int
	AntonymFlips   int
	OverrideWrites int

	Superclasses map[string]int
	PosCounts    map[Pos]int
}

// NewBuildStats returns a stats collector with its maps ready.
func NewBuildStats() *BuildStats {
	return &BuildStats{
		Superclasses: make(map[string]int),
		PosCounts:    make(map[Pos]int),
	}
}

// CountValence records the lexical-stage outcome for one concept.
func (s *BuildStats) CountValence(v Valence, strength Strength) {
	switch v {
	case Positive:
		s.Positive++
	case Negative:
		s.Negative++
	default:
		s.Neutral++
	}
	switch strength {
	case Strong:
		s.StrongSignals++
	case Weak:
		s.WeakSignals++
	}
}
