package lexicon

import (
	"path/filepath"
	"testing"

	"github.com/oyemi/lexicon/helper"
	"github.com/oyemi/lexicon/kb"
	"github.com/oyemi/lexicon/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClassification() *model.Classification {
	return &model.Classification{
		SuperclassRoots: map[string]string{
			"layoff.n.01":      "0233",
			"termination.n.01": "0232",
			"event.n.01":       "0162",
			"fire.v.02":        "2102",
		},
		Fallbacks: map[model.Pos]string{
			model.Noun:      "0999",
			model.Verb:      "2999",
			model.Adjective: "3999",
			model.Adverb:    "4999",
		},
		AbstractAncestors: map[string]struct{}{
			"abstraction.n.06": {},
			"event.n.01":       {},
		},
		ConcreteAncestors: map[string]struct{}{
			"physical_entity.n.01": {},
			"object.n.01":          {},
		},
		Overrides: map[string]model.Valence{
			"fired": model.Negative,
			"hired": model.Positive,
		},
		ProbeWords: []string{"layoff", "fired"},
	}
}

func testConcepts() []*model.Concept {
	return []*model.Concept{
		{
			ID:     "layoff.n.01",
			PosTag: "n",
			HypernymPaths: [][]string{
				{"layoff.n.01", "termination.n.01", "event.n.01", "abstraction.n.06", "entity.n.01"},
			},
			PosScore: 0.0,
			NegScore: 0.375,
			Lemmas: []model.Lemma{
				{Word: "layoff", Frequency: 12},
				{Word: "layoffs", Frequency: 2},
			},
		},
		{
			ID:     "fire.v.02",
			PosTag: "v",
			HypernymPaths: [][]string{
				{"fire.v.02", "remove.v.01"},
			},
			Lemmas: []model.Lemma{
				{Word: "fire", Frequency: 4},
				{Word: "fired", Frequency: 9},
			},
		},
		{
			ID:       "fortunate.a.01",
			PosTag:   "a",
			PosScore: 0.5,
			Lemmas: []model.Lemma{
				{Word: "fortunate", Frequency: 3, Antonyms: []string{"unfortunate"}},
			},
		},
		{
			ID:     "unfortunate.a.01",
			PosTag: "a",
			Lemmas: []model.Lemma{
				{Word: "unfortunate", Frequency: 5},
			},
		},
	}
}

func newTestLexicon(t *testing.T, dir string) *Lexicon {
	t.Helper()
	config := &helper.DatabaseConfiguration{
		Driver: helper.DriverSQLite,
		Path:   filepath.Join(dir, "lexicon.db"),
	}

	lex, err := NewRebuildLexicon(config)
	require.NoError(t, err)
	t.Cleanup(func() { lex.Close() })

	lex.SetClassification(testClassification())
	return lex
}

func TestBuildAndLookup(t *testing.T) {
	lex := newTestLexicon(t, t.TempDir())

	stats, err := lex.Build(kb.NewMemory(testConcepts()))
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Concepts)
	assert.Equal(t, 6, stats.Entries)
	assert.Equal(t, 6, stats.Words)
	assert.Equal(t, 0, stats.Dropped)
	assert.Equal(t, 1, stats.AntonymFlips)
	assert.Equal(t, 0, stats.OverrideWrites, "overrides are already pinned at assignment")

	t.Run("Lexical negative with abstract ancestry", func(t *testing.T) {
		codes, err := lex.Lookup("layoff")
		require.NoError(t, err)
		assert.Equal(t, []string{"0233-00001-1-2-2"}, codes)
	})

	t.Run("Override pins the valence digit", func(t *testing.T) {
		codes, err := lex.Lookup("fired")
		require.NoError(t, err)
		assert.Equal(t, []string{"2102-00001-2-1-2"}, codes)

		// The sibling lemma of the same concept stays at the lexical result.
		codes, err = lex.Lookup("fire")
		require.NoError(t, err)
		assert.Equal(t, []string{"2102-00001-2-1-0"}, codes)
	})

	t.Run("Antonym propagation flipped the neutral partner", func(t *testing.T) {
		codes, err := lex.Lookup("unfortunate")
		require.NoError(t, err)
		assert.Equal(t, []string{"3999-00002-3-1-2"}, codes)

		partners, err := lex.LookupAntonyms("unfortunate")
		require.NoError(t, err)
		assert.Equal(t, []string{"fortunate"}, partners)
	})

	t.Run("Unknown word is a miss, not an error", func(t *testing.T) {
		codes, err := lex.Lookup("zzz")
		require.NoError(t, err)
		assert.Empty(t, codes)
	})
}

func TestLookupBaseFormFallback(t *testing.T) {
	lex := newTestLexicon(t, t.TempDir())

	_, err := lex.Build(kb.NewMemory(testConcepts()))
	require.NoError(t, err)

	// The builder only records base forms for words that are themselves
	// lexicon entries, so the fallback path needs a hand-planted mapping.
	_, err = lex.Lemmas.InsertBaseForms([]model.BaseForm{{Word: "firings", Lemma: "fire"}})
	require.NoError(t, err)

	codes, err := lex.Lookup("firings")
	require.NoError(t, err)
	assert.Equal(t, []string{"2102-00001-2-1-0"}, codes)
}

func TestBuildRecordsBaseForms(t *testing.T) {
	lex := newTestLexicon(t, t.TempDir())

	stats, err := lex.Build(kb.NewMemory(testConcepts()))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.BaseForms)
	base, err := lex.Lemmas.SelectBaseForm("layoffs")
	require.NoError(t, err)
	assert.Equal(t, "layoff", base)
}

func TestLookupOrdersByPriority(t *testing.T) {
	lex := newTestLexicon(t, t.TempDir())

	concepts := []*model.Concept{
		{
			ID:     "bank.n.01",
			PosTag: "n",
			HypernymPaths: [][]string{
				{"bank.n.01", "termination.n.01"},
			},
			Lemmas: []model.Lemma{{Word: "bank", Frequency: 20}},
		},
		{
			ID:     "bank.n.02",
			PosTag: "n",
			Lemmas: []model.Lemma{{Word: "bank", Frequency: 3}},
		},
	}

	_, err := lex.Build(kb.NewMemory(concepts))
	require.NoError(t, err)

	codes, err := lex.Lookup("bank")
	require.NoError(t, err)
	// The specific sense outranks the fallback sense regardless of frequency.
	require.Len(t, codes, 2)
	assert.Equal(t, "0232-00001-1-1-0", codes[0])
	assert.Equal(t, "0999-00001-1-1-0", codes[1])
}

func TestValidateAfterBuild(t *testing.T) {
	lex := newTestLexicon(t, t.TempDir())

	source := kb.NewMemory(testConcepts())
	_, err := lex.Build(source)
	require.NoError(t, err)

	report, err := lex.Validate(source)
	require.NoError(t, err)
	assert.True(t, report.Passed())
	assert.Empty(t, report.Issues())
}

func TestValidateCatchesTampering(t *testing.T) {
	lex := newTestLexicon(t, t.TempDir())

	source := kb.NewMemory(testConcepts())
	_, err := lex.Build(source)
	require.NoError(t, err)

	require.NoError(t, lex.Entries.UpdateCode("layoff", "0233-00001-1-2-2", "0233-00001-1-2-0"))

	report, err := lex.Validate(source)
	require.NoError(t, err)
	assert.False(t, report.Passed())
}

func TestBuildDeterminism(t *testing.T) {
	source := kb.NewMemory(testConcepts())

	first := newTestLexicon(t, t.TempDir())
	_, err := first.Build(source)
	require.NoError(t, err)
	firstEntries, err := first.Entries.SelectAllEntries()
	require.NoError(t, err)

	second := newTestLexicon(t, t.TempDir())
	_, err = second.Build(source)
	require.NoError(t, err)
	secondEntries, err := second.Entries.SelectAllEntries()
	require.NoError(t, err)

	assert.Equal(t, firstEntries, secondEntries)
}

func TestRebuildReplacesArtifact(t *testing.T) {
	dir := t.TempDir()

	first := newTestLexicon(t, dir)
	_, err := first.Build(kb.NewMemory(testConcepts()))
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// A rebuild over the same path starts from an empty artifact.
	second := newTestLexicon(t, dir)
	count, err := second.Entries.CountWords()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
