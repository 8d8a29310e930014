// Package pipeline turns a knowledge-base snapshot into the final lexicon
// state through three staged, pure transformations: assignment, antonym
// propagation and the terminal override pass. The stage order is load-bearing;
// running overrides before propagation would let propagation overwrite them.
package pipeline

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/oyemi/lexicon/core/resolve"
	"github.com/oyemi/lexicon/kb"
	"github.com/oyemi/lexicon/model"
)

// CodeUpdate is a point rewrite of one stored entry, keyed by the exact old
// code. The persistence phases replay these after the bulk insert.
type CodeUpdate struct {
	Word    string
	OldCode string
	NewCode string
}

// Pipeline wires the leaf resolvers over one injected classification.
type Pipeline struct {
	classification *model.Classification
	superclass     *resolve.SuperclassResolver
	attributes     *resolve.AttributeClassifier
	valence        *resolve.ValenceResolver
	lemmatizer     kb.Lemmatizer
	log            *slog.Logger
}

// NewPipeline creates a pipeline over the given tables and lemmatizer.
func NewPipeline(classification *model.Classification, lemmatizer kb.Lemmatizer, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		classification: classification,
		superclass:     resolve.NewSuperclassResolver(classification),
		attributes:     resolve.NewAttributeClassifier(classification),
		valence:        resolve.NewValenceResolver(classification),
		lemmatizer:     lemmatizer,
		log:            logger,
	}
}

// Run executes all three stages and returns the final state together with
// the point updates of stages two and three, in application order.
func (p *Pipeline) Run(concepts []*model.Concept) (*State, []CodeUpdate, []CodeUpdate) {
	assigned := p.Assign(concepts)
	p.log.Info("Assigned codes",
		slog.Int("concepts", assigned.Stats.Concepts),
		slog.Int("entries", assigned.Stats.Entries),
		slog.Int("words", assigned.Stats.Words),
		slog.Int("dropped", assigned.Stats.Dropped))

	propagated, flips := p.PropagateAntonyms(assigned)
	p.log.Info("Propagated antonym valences", slog.Int("flips", len(flips)))

	final, pins := p.ApplyOverrides(propagated)
	p.log.Info("Applied terminal overrides", slog.Int("rewrites", len(pins)))

	return final, flips, pins
}

// Assign walks the concepts in snapshot order and produces the initial
// state: resolved codes per surface word, priorities, base-form mappings and
// the antonym pair set. Per-concept lookup failures degrade to the POS
// fallback superclass, mixed abstractness and neutral valence; they never
// abort the batch.
func (p *Pipeline) Assign(concepts []*model.Concept) *State {
	state := newState()
	encoder := resolve.NewEncoder()

	type baseForm struct{ word, base string }
	var candidates []baseForm

	for _, concept := range concepts {
		superclass, specific := p.superclass.Resolve(concept)
		abstractness := p.attributes.Classify(concept)
		lexical, strength := p.valence.Lexical(concept.PosScore, concept.NegScore)

		state.Stats.Concepts++
		state.Stats.CountValence(lexical, strength)
		state.Stats.Superclasses[superclass]++
		state.Stats.PosCounts[concept.Pos()]++

		// One sequence number per concept, consumed even when every lemma
		// is dropped, so numbering never depends on surface-form hygiene.
		code := encoder.Encode(superclass, concept.Pos(), abstractness, lexical)

		for ordinal, lemma := range concept.Lemmas {
			word := normalizeWord(lemma.Word)
			if !cleanWord(word) {
				state.Stats.Dropped++
				continue
			}

			valence := lexical
			if pinned, ok := p.valence.Override(word); ok {
				valence = pinned
			}

			state.add(model.Entry{
				Word:     word,
				Code:     code.WithValence(valence).String(),
				Priority: resolve.Priority(lemma.Frequency, specific, ordinal),
			})

			for _, antonym := range lemma.Antonyms {
				other := normalizeWord(antonym)
				if cleanWord(other) {
					state.Antonyms = append(state.Antonyms, model.AntonymPair{Word: word, Antonym: other})
				}
			}

			if !strings.ContainsAny(word, " -") {
				if base := p.lemmatizer.BaseForm(word); base != word {
					candidates = append(candidates, baseForm{word: word, base: base})
				}
			}
		}
	}

	// Base forms are only recorded when the base itself is a lexicon word;
	// a mangled candidate then produces a miss instead of a wrong row.
	seen := make(map[string]bool)
	for _, c := range candidates {
		if seen[c.word] || !state.Has(c.base) {
			continue
		}
		seen[c.word] = true
		state.BaseForms = append(state.BaseForms, model.BaseForm{Word: c.word, Lemma: c.base})
	}

	state.Stats.Entries = len(state.Entries)
	state.Stats.Words = state.WordCount()
	state.Stats.BaseForms = len(state.BaseForms)
	state.Stats.AntonymPairs = len(state.Antonyms)

	return state
}

// PropagateAntonyms runs the third valence stage once over the committed
// state. For every antonym pair where neither side is override-protected,
// an undecided side (one holding neutral entries) inherits the opposite of
// its partner's uniform polarity. Only neutral entries ever change; decisions
// are taken against the pre-pass state, in pair order, first writer wins.
func (p *Pipeline) PropagateAntonyms(state *State) (*State, []CodeUpdate) {
	next := state.clone()
	var updates []CodeUpdate
	flipped := make(map[int]bool)

	flip := func(word string, to model.Valence) {
		for _, i := range state.byWord[word] {
			if flipped[i] || entryValence(state.Entries[i]) != model.Neutral {
				continue
			}
			old := state.Entries[i].Code
			code, err := model.ParseCode(old)
			if err != nil {
				continue
			}
			flipped[i] = true
			next.Entries[i].Code = code.WithValence(to).String()
			updates = append(updates, CodeUpdate{Word: word, OldCode: old, NewCode: next.Entries[i].Code})
		}
	}

	for _, pair := range state.Antonyms {
		w1, w2 := pair.Word, pair.Antonym
		if !state.Has(w1) || !state.Has(w2) {
			continue
		}
		if p.classification.IsOverridden(w1) || p.classification.IsOverridden(w2) {
			continue
		}

		if polarity, ok := state.uniformPolarity(w2); ok && state.hasNeutral(w1) {
			flip(w1, polarity.Opposite())
			continue
		}
		if polarity, ok := state.uniformPolarity(w1); ok && state.hasNeutral(w2) {
			flip(w2, polarity.Opposite())
		}
	}

	next.Stats.AntonymFlips = len(updates)
	return next, updates
}

// ApplyOverrides is the terminal stage: every entry of an overridden word
// carries the pinned valence digit when it completes, whatever the earlier
// stages computed. Assignment already applies overrides per word, so this
// pass normally rewrites nothing; it exists to make the guarantee
// unconditional rather than an emergent property of stage two's skip list.
func (p *Pipeline) ApplyOverrides(state *State) (*State, []CodeUpdate) {
	next := state.clone()
	var updates []CodeUpdate

	for i, entry := range state.Entries {
		pinned, ok := p.classification.Overrides[entry.Word]
		if !ok {
			continue
		}
		code, err := model.ParseCode(entry.Code)
		if err != nil || code.Valence == pinned {
			continue
		}
		next.Entries[i].Code = code.WithValence(pinned).String()
		updates = append(updates, CodeUpdate{Word: entry.Word, OldCode: entry.Code, NewCode: next.Entries[i].Code})
	}

	next.Stats.OverrideWrites = len(updates)
	return next, updates
}

// normalizeWord lowercases and replaces the knowledge base's underscore
// separators with spaces.
func normalizeWord(word string) string {
	return strings.ReplaceAll(strings.ToLower(word), "_", " ")
}

// cleanWord reports whether the surface form contains only letters after
// stripping spaces and hyphens. Anything else is silently dropped from the
// output.
func cleanWord(word string) bool {
	stripped := strings.NewReplacer(" ", "", "-", "").Replace(word)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
