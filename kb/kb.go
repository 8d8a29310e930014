// Package kb defines the knowledge-base collaborator the builder consumes:
// a source of concepts with hypernym paths, sentiment scores and lemmas,
// plus a base-form lemmatizer. The corpus itself is not reimplemented here;
// snapshots are expected to be exported from the upstream lexical database.
package kb

import "github.com/oyemi/lexicon/model"

// KnowledgeBase supplies the concepts of one snapshot. The returned order is
// the snapshot's own enumeration order and must be stable across calls; the
// per-superclass sequence numbers depend on it.
type KnowledgeBase interface {
	Concepts() ([]*model.Concept, error)
}

// Lemmatizer maps a surface word to its canonical base form. BaseForm
// returns the input unchanged when no base form applies.
type Lemmatizer interface {
	BaseForm(word string) string
}

// Memory is an in-memory KnowledgeBase over a fixed concept slice.
type Memory struct {
	concepts []*model.Concept
}

// NewMemory wraps the given concepts without copying them.
func NewMemory(concepts []*model.Concept) *Memory {
	return &Memory{concepts: concepts}
}

// Concepts returns the wrapped slice in its original order.
func (m *Memory) Concepts() ([]*model.Concept, error) {
	return m.concepts, nil
}
