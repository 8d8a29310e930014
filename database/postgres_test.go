package database

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/oyemi/lexicon/helper"
	"github.com/oyemi/lexicon/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPostgresHandlers exercises the same handlers against a real Postgres,
// verifying the placeholder rebinding and the dialect-neutral DDL. Requires
// Docker; enable with LEXICON_TEST_POSTGRES=1.
func TestPostgresHandlers(t *testing.T) {
	if os.Getenv("LEXICON_TEST_POSTGRES") == "" {
		t.Skip("set LEXICON_TEST_POSTGRES=1 to run the Postgres suite")
	}

	teardown, port, err := helper.MustStartPostgresContainer()
	require.NoError(t, err, "error starting postgres container")
	t.Cleanup(func() {
		if err := teardown(context.Background()); err != nil {
			t.Logf("error tearing down postgres container: %v", err)
		}
	})

	helper.SetTestDatabaseConfigEnvs(t, port)
	config, err := helper.NewDatabaseConfiguration()
	require.NoError(t, err, "failed to create database configuration")

	db, err := helper.NewDatabase(config, helper.NewLogger(io.Discard, slog.LevelError))
	require.NoError(t, err)
	defer db.Close()

	lexicon, err := NewLexiconDBHandler(db)
	require.NoError(t, err)
	lemmas, err := NewLemmasDBHandler(db)
	require.NoError(t, err)
	antonyms, err := NewAntonymsDBHandler(db)
	require.NoError(t, err)

	t.Run("Lexicon insert, update and select", func(t *testing.T) {
		_, err := lexicon.InsertEntries([]model.Entry{
			{Word: "layoff", Code: "0233-00001-1-2-0", Priority: 10022},
			{Word: "layoff", Code: "0233-00001-1-2-0", Priority: 1},
		})
		require.NoError(t, err)

		require.NoError(t, lexicon.UpdateCode("layoff", "0233-00001-1-2-0", "0233-00001-1-2-2"))

		codes, err := lexicon.SelectCodes("layoff")
		require.NoError(t, err)
		assert.Equal(t, []string{"0233-00001-1-2-2"}, codes)
	})

	t.Run("Base form and antonym round trips", func(t *testing.T) {
		_, err := lemmas.InsertBaseForms([]model.BaseForm{{Word: "layoffs", Lemma: "layoff"}})
		require.NoError(t, err)

		lemma, err := lemmas.SelectBaseForm("layoffs")
		require.NoError(t, err)
		assert.Equal(t, "layoff", lemma)

		_, err = antonyms.InsertPairs([]model.AntonymPair{{Word: "hire", Antonym: "fire"}})
		require.NoError(t, err)

		found, err := antonyms.SelectAntonyms("fire")
		require.NoError(t, err)
		assert.Equal(t, []string{"hire"}, found)
	})
}
