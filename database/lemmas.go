package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/oyemi/lexicon/helper"
	"github.com/oyemi/lexicon/model"
	loadSql "github.com/oyemi/lexicon/sql"
)

// LemmasDBHandlerFunctions defines the interface for base-form operations.
type LemmasDBHandlerFunctions interface {
	InsertBaseForms(forms []model.BaseForm) (int, error)
	SelectBaseForm(word string) (string, error)
	CountBaseForms() (int, error)
}

// LemmasDBHandler handles the lemma_base_form(word, lemma) table.
type LemmasDBHandler struct {
	db *helper.Database
}

// NewLemmasDBHandler creates the handler and ensures the table exists.
func NewLemmasDBHandler(db *helper.Database) (*LemmasDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	handler := &LemmasDBHandler{db: db}

	if err := loadSql.LoadLemmasSql(db.Instance); err != nil {
		return nil, helper.NewError("load lemmas sql", err)
	}

	db.Logger.Info("Initialized LemmasDBHandler")

	return handler, nil
}

// InsertBaseForms bulk-inserts with insert-or-ignore semantics.
func (h *LemmasDBHandler) InsertBaseForms(forms []model.BaseForm) (int, error) {
	tx, err := h.db.Instance.Begin()
	if err != nil {
		return 0, helper.NewError("begin transaction", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(h.db.Rebind(
		`INSERT INTO lemma_base_form (word, lemma) VALUES (?, ?) ON CONFLICT DO NOTHING`,
	))
	if err != nil {
		return 0, helper.NewError("prepare insert", err)
	}
	defer stmt.Close()

	for _, form := range forms {
		if _, err := stmt.Exec(form.Word, form.Lemma); err != nil {
			return 0, helper.NewError("insert base form", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, helper.NewError("commit", err)
	}

	return len(forms), nil
}

// SelectBaseForm returns the base form for a word, or "" when none is stored.
func (h *LemmasDBHandler) SelectBaseForm(word string) (string, error) {
	var lemma string
	err := h.db.Instance.QueryRow(
		h.db.Rebind(`SELECT lemma FROM lemma_base_form WHERE word = ?`),
		word,
	).Scan(&lemma)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", helper.NewError("scan", err)
	}
	return lemma, nil
}

// CountBaseForms returns the number of stored mappings.
func (h *LemmasDBHandler) CountBaseForms() (int, error) {
	var count int
	err := h.db.Instance.QueryRow(`SELECT COUNT(*) FROM lemma_base_form`).Scan(&count)
	if err != nil {
		return 0, helper.NewError("scan", err)
	}
	return count, nil
}
