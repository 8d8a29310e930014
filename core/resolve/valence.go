package resolve

import "github.com/oyemi/lexicon/model"

// ValenceResolver computes the valence digit. The lexical stage compares the
// sentiment score pair; the override stage pins listed words. Antonym
// propagation, the third stage, operates on the whole lexicon and lives in
// core/pipeline.
type ValenceResolver struct {
	classification *model.Classification
}

// NewValenceResolver creates a resolver over the given override table.
func NewValenceResolver(classification *model.Classification) *ValenceResolver {
	return &ValenceResolver{classification: classification}
}

// Lexical decides polarity by strict comparison: whichever score is larger
// wins, a tie (including 0 vs 0) is neutral. The returned strength buckets
// the winning score for reporting only; it never changes the digit.
func (r *ValenceResolver) Lexical(posScore, negScore float64) (model.Valence, model.Strength) {
	switch {
	case negScore > posScore:
		return model.Negative, model.StrengthOf(negScore)
	case posScore > negScore:
		return model.Positive, model.StrengthOf(posScore)
	default:
		return model.Neutral, model.None
	}
}

// Override returns the pinned valence for a lowercase surface word.
func (r *ValenceResolver) Override(word string) (model.Valence, bool) {
	v, ok := r.classification.Overrides[word]
	return v, ok
}

// Resolve applies the lexical stage and then the override stage for one
// surface word. The override stage is re-applied terminally after antonym
// propagation by the pipeline, which is what makes overrides unbeatable.
func (r *ValenceResolver) Resolve(word string, posScore, negScore float64) (model.Valence, model.Strength) {
	valence, strength := r.Lexical(posScore, negScore)
	if pinned, ok := r.Override(word); ok {
		return pinned, strength
	}
	return valence, strength
}
