// Package sql carries the embedded schema for the three lexicon tables. The
// DDL is dialect-neutral and runs unchanged on SQLite and Postgres.
package sql

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed lexicon.sql
var lexiconSQL string

//go:embed lemmas.sql
var lemmasSQL string

//go:embed antonyms.sql
var antonymsSQL string

// Tables managed by this package, in creation order.
var Tables = []string{
	"lexicon",
	"lemma_base_form",
	"antonym",
}

// LoadLexiconSql creates the lexicon table and its word index.
func LoadLexiconSql(db *sql.DB) error {
	return load(db, "lexicon", lexiconSQL)
}

// LoadLemmasSql creates the lemma_base_form table and its lemma index.
func LoadLemmasSql(db *sql.DB) error {
	return load(db, "lemma_base_form", lemmasSQL)
}

// LoadAntonymsSql creates the antonym table.
func LoadAntonymsSql(db *sql.DB) error {
	return load(db, "antonym", antonymsSQL)
}

func load(db *sql.DB, table string, ddl string) error {
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("error creating table %s: %w", table, err)
	}
	return nil
}
