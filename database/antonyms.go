package database

import (
	"fmt"

	"github.com/oyemi/lexicon/helper"
	"github.com/oyemi/lexicon/model"
	loadSql "github.com/oyemi/lexicon/sql"
)

// AntonymsDBHandlerFunctions defines the interface for antonym operations.
type AntonymsDBHandlerFunctions interface {
	InsertPairs(pairs []model.AntonymPair) (int, error)
	SelectAntonyms(word string) ([]string, error)
}

// AntonymsDBHandler handles the antonym(word, antonym) table.
type AntonymsDBHandler struct {
	db *helper.Database
}

// NewAntonymsDBHandler creates the handler and ensures the table exists.
func NewAntonymsDBHandler(db *helper.Database) (*AntonymsDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	handler := &AntonymsDBHandler{db: db}

	if err := loadSql.LoadAntonymsSql(db.Instance); err != nil {
		return nil, helper.NewError("load antonyms sql", err)
	}

	db.Logger.Info("Initialized AntonymsDBHandler")

	return handler, nil
}

// InsertPairs bulk-inserts with insert-or-ignore semantics.
func (h *AntonymsDBHandler) InsertPairs(pairs []model.AntonymPair) (int, error) {
	tx, err := h.db.Instance.Begin()
	if err != nil {
		return 0, helper.NewError("begin transaction", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(h.db.Rebind(
		`INSERT INTO antonym (word, antonym) VALUES (?, ?) ON CONFLICT DO NOTHING`,
	))
	if err != nil {
		return 0, helper.NewError("prepare insert", err)
	}
	defer stmt.Close()

	for _, pair := range pairs {
		if _, err := stmt.Exec(pair.Word, pair.Antonym); err != nil {
			return 0, helper.NewError("insert antonym pair", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, helper.NewError("commit", err)
	}

	return len(pairs), nil
}

// SelectAntonyms returns the antonyms recorded for a word, in either
// direction of the stored pair.
func (h *AntonymsDBHandler) SelectAntonyms(word string) ([]string, error) {
	rows, err := h.db.Instance.Query(
		h.db.Rebind(`SELECT antonym FROM antonym WHERE word = ?
			UNION SELECT word FROM antonym WHERE antonym = ?
			ORDER BY 1`),
		word, word,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var antonyms []string
	for rows.Next() {
		var antonym string
		if err := rows.Scan(&antonym); err != nil {
			return nil, helper.NewError("scan", err)
		}
		antonyms = append(antonyms, antonym)
	}

	if err := rows.Err(); err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return antonyms, nil
}
