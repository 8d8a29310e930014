package pipeline

import (
	"github.com/oyemi/lexicon/model"
)

// State is the accumulating lexicon a build pass produces. Stages never
// mutate their input state; each returns a fresh one, which keeps the
// override-wins and flip-only-neutral invariants checkable in isolation.
type State struct {
	// Entries in insertion order; this order is what the bulk-insert phase
	// replays, so it is part of the determinism contract.
	Entries   []model.Entry
	BaseForms []model.BaseForm
	Antonyms  []model.AntonymPair
	Stats     *model.BuildStats

	byWord map[string][]int
}

func newState() *State {
	return &State{
		Stats:  model.NewBuildStats(),
		byWord: make(map[string][]int),
	}
}

// clone copies the entry slice and index so a stage can rewrite valences
// without touching its input. Base forms and antonyms are frozen after the
// assign stage and shared.
func (s *State) clone() *State {
	entries := make([]model.Entry, len(s.Entries))
	copy(entries, s.Entries)

	byWord := make(map[string][]int, len(s.byWord))
	for word, idx := range s.byWord {
		byWord[word] = idx
	}

	return &State{
		Entries:   entries,
		BaseForms: s.BaseForms,
		Antonyms:  s.Antonyms,
		Stats:     s.Stats,
		byWord:    byWord,
	}
}

// add appends an entry unless the (word, code) pair already exists.
func (s *State) add(entry model.Entry) {
	for _, i := range s.byWord[entry.Word] {
		if s.Entries[i].Code == entry.Code {
			return
		}
	}
	s.Entries = append(s.Entries, entry)
	s.byWord[entry.Word] = append(s.byWord[entry.Word], len(s.Entries)-1)
}

// Has reports whether the word owns at least one entry.
func (s *State) Has(word string) bool {
	return len(s.byWord[word]) > 0
}

// CodesFor returns the word's codes in insertion order.
func (s *State) CodesFor(word string) []string {
	idx := s.byWord[word]
	codes := make([]string, 0, len(idx))
	for _, i := range idx {
		codes = append(codes, s.Entries[i].Code)
	}
	return codes
}

// WordCount returns the number of distinct words.
func (s *State) WordCount() int {
	return len(s.byWord)
}

// hasNeutral reports whether any of the word's entries is neutral.
func (s *State) hasNeutral(word string) bool {
	for _, i := range s.byWord[word] {
		if entryValence(s.Entries[i]) == model.Neutral {
			return true
		}
	}
	return false
}

// uniformPolarity returns the single non-neutral valence shared by all of
// the word's entries, or false when the word has neutral entries or mixes
// positive and negative ones.
func (s *State) uniformPolarity(word string) (model.Valence, bool) {
	polarity := model.Neutral
	for _, i := range s.byWord[word] {
		v := entryValence(s.Entries[i])
		if v == model.Neutral {
			return model.Neutral, false
		}
		if polarity != model.Neutral && polarity != v {
			return model.Neutral, false
		}
		polarity = v
	}
	return polarity, polarity != model.Neutral
}

// entryValence reads the valence digit off a stored code string. Codes are
// produced by the encoder, so a parse failure here is a programming error;
// it degrades to neutral rather than panicking mid-batch.
func entryValence(entry model.Entry) model.Valence {
	code, err := model.ParseCode(entry.Code)
	if err != nil {
		return model.Neutral
	}
	return code.Valence
}
