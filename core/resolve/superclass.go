// Package resolve holds the leaf resolvers of the build pipeline: superclass
// lookup, abstractness classification, valence resolution, sense priority and
// code encoding. Each resolver runs on an injected model.Classification and
// never fails a batch; lookup problems degrade to documented fallbacks.
package resolve

import "github.com/oyemi/lexicon/model"

// SuperclassResolver maps a concept to its 4-digit superclass code by walking
// its hypernym paths.
type SuperclassResolver struct {
	classification *model.Classification
}

// NewSuperclassResolver creates a resolver over the given tables.
func NewSuperclassResolver(classification *model.Classification) *SuperclassResolver {
	return &SuperclassResolver{classification: classification}
}

// Resolve walks the hypernym paths in the order the knowledge base reported
// them; within a path it scans from the concept itself out to the root. The
// first ancestor found in the superclass table wins, and the first path that
// yields any hit settles the concept even when a later path holds a
// depth-wise closer match. Concepts with no paths or no hit anywhere get the
// POS-keyed fallback. The second result reports whether the code is a
// specific match rather than a fallback.
func (r *SuperclassResolver) Resolve(concept *model.Concept) (string, bool) {
	for _, path := range concept.HypernymPaths {
		for _, ancestor := range path {
			if code, ok := r.classification.SuperclassRoots[ancestor]; ok {
				return code, true
			}
		}
	}
	return r.classification.FallbackFor(concept.Pos()), false
}
