package resolve

import "github.com/oyemi/lexicon/model"

// AttributeClassifier decides the abstractness digit from the union of a
// concept's ancestors across all hypernym paths.
type AttributeClassifier struct {
	classification *model.Classification
}

// NewAttributeClassifier creates a classifier over the given reference sets.
func NewAttributeClassifier(classification *model.Classification) *AttributeClassifier {
	return &AttributeClassifier{classification: classification}
}

// Classify returns Concrete when the ancestor union intersects only the
// concrete reference set, Abstract when it intersects only the abstract set,
// and Mixed in every other case: both sets hit, neither hit, or a concept
// with no paths at all.
func (c *AttributeClassifier) Classify(concept *model.Concept) model.Abstractness {
	abstract := false
	concrete := false
	for _, path := range concept.HypernymPaths {
		for _, ancestor := range path {
			if _, ok := c.classification.AbstractAncestors[ancestor]; ok {
				abstract = true
			}
			if _, ok := c.classification.ConcreteAncestors[ancestor]; ok {
				concrete = true
			}
		}
	}

	switch {
	case abstract && !concrete:
		return model.Abstract
	case concrete && !abstract:
		return model.Concrete
	default:
		return model.Mixed
	}
}
