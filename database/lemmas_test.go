package database

import (
	"testing"

	"github.com/oyemi/lexicon/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLemmasDBHandler(t *testing.T) {
	t.Run("Round trip and miss", func(t *testing.T) {
		handler, err := NewLemmasDBHandler(initDB(t))
		require.NoError(t, err)

		_, err = handler.InsertBaseForms([]model.BaseForm{
			{Word: "layoffs", Lemma: "layoff"},
			{Word: "salaries", Lemma: "salary"},
		})
		require.NoError(t, err)

		lemma, err := handler.SelectBaseForm("layoffs")
		require.NoError(t, err)
		assert.Equal(t, "layoff", lemma)

		lemma, err = handler.SelectBaseForm("layoff")
		require.NoError(t, err)
		assert.Empty(t, lemma, "base words carry no mapping")

		count, err := handler.CountBaseForms()
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Word key is unique", func(t *testing.T) {
		handler, err := NewLemmasDBHandler(initDB(t))
		require.NoError(t, err)

		_, err = handler.InsertBaseForms([]model.BaseForm{
			{Word: "mice", Lemma: "mouse"},
			{Word: "mice", Lemma: "mousse"},
		})
		require.NoError(t, err)

		lemma, err := handler.SelectBaseForm("mice")
		require.NoError(t, err)
		assert.Equal(t, "mouse", lemma, "first writer wins")
	})
}

func TestAntonymsDBHandler(t *testing.T) {
	t.Run("Pairs are looked up in both directions", func(t *testing.T) {
		handler, err := NewAntonymsDBHandler(initDB(t))
		require.NoError(t, err)

		_, err = handler.InsertPairs([]model.AntonymPair{
			{Word: "hire", Antonym: "fire"},
			{Word: "happy", Antonym: "sad"},
			{Word: "happy", Antonym: "unhappy"},
		})
		require.NoError(t, err)

		antonyms, err := handler.SelectAntonyms("happy")
		require.NoError(t, err)
		assert.Equal(t, []string{"sad", "unhappy"}, antonyms)

		antonyms, err = handler.SelectAntonyms("fire")
		require.NoError(t, err)
		assert.Equal(t, []string{"hire"}, antonyms, "reverse direction resolves")
	})

	t.Run("Duplicate pairs collapse", func(t *testing.T) {
		handler, err := NewAntonymsDBHandler(initDB(t))
		require.NoError(t, err)

		_, err = handler.InsertPairs([]model.AntonymPair{
			{Word: "rise", Antonym: "fall"},
			{Word: "rise", Antonym: "fall"},
		})
		require.NoError(t, err)

		antonyms, err := handler.SelectAntonyms("rise")
		require.NoError(t, err)
		assert.Len(t, antonyms, 1)
	})
}
