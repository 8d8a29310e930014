package resolve

const (
	// specificBoost ranks any specifically-classified sense above every
	// fallback-classified one, regardless of corpus frequency.
	specificBoost = 10000
	// ordinalCeiling caps the bonus for early lemma positions.
	ordinalCeiling = 10
)

// Priority computes the deterministic tie-break score downstream single-sense
// consumers use to pick a word's primary code. Frequency dominates within a
// classification tier; the ordinal bonus breaks zero-frequency ties by lemma
// position within the concept.
func Priority(frequency int, specific bool, ordinal int) int {
	priority := frequency
	if specific {
		priority += specificBoost
	}
	if bonus := ordinalCeiling - ordinal; bonus > 0 {
		priority += bonus
	}
	return priority
}
