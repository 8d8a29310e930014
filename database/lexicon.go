package database

import (
	"fmt"

	"github.com/oyemi/lexicon/helper"
	"github.com/oyemi/lexicon/model"
	"github.com/oyemi/lexicon/sql"
)

// LexiconDBHandlerFunctions defines the interface for lexicon table operations.
type LexiconDBHandlerFunctions interface {
	InsertEntries(entries []model.Entry) (int, error)
	UpdateCode(word, oldCode, newCode string) error
	SelectCodes(word string) ([]string, error)
	SelectAllEntries() ([]model.Entry, error)
	SelectDistinctCodes() ([]string, error)
	CountWords() (int, error)
}

// LexiconDBHandler handles the lexicon(word, code, priority) table.
type LexiconDBHandler struct {
	db *helper.Database
}

// NewLexiconDBHandler creates the handler and ensures the table exists.
func NewLexiconDBHandler(db *helper.Database) (*LexiconDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	handler := &LexiconDBHandler{db: db}

	if err := sql.LoadLexiconSql(db.Instance); err != nil {
		return nil, helper.NewError("load lexicon sql", err)
	}

	db.Logger.Info("Initialized LexiconDBHandler")

	return handler, nil
}

// InsertEntries bulk-inserts with insert-or-ignore semantics inside a single
// transaction, preserving slice order. Returns the number of rows offered.
func (h *LexiconDBHandler) InsertEntries(entries []model.Entry) (int, error) {
	tx, err := h.db.Instance.Begin()
	if err != nil {
		return 0, helper.NewError("begin transaction", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(h.db.Rebind(
		`INSERT INTO lexicon (word, code, priority) VALUES (?, ?, ?) ON CONFLICT DO NOTHING`,
	))
	if err != nil {
		return 0, helper.NewError("prepare insert", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		if _, err := stmt.Exec(entry.Word, entry.Code, entry.Priority); err != nil {
			return 0, helper.NewError("insert entry", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, helper.NewError("commit", err)
	}

	return len(entries), nil
}

// UpdateCode rewrites one entry, matched by its exact old code.
func (h *LexiconDBHandler) UpdateCode(word, oldCode, newCode string) error {
	_, err := h.db.Instance.Exec(
		h.db.Rebind(`UPDATE lexicon SET code = ? WHERE word = ? AND code = ?`),
		newCode, word, oldCode,
	)
	if err != nil {
		return helper.NewError("update code", err)
	}
	return nil
}

// SelectCodes returns the stored codes for a word ordered by priority,
// highest first, code as tie-break.
func (h *LexiconDBHandler) SelectCodes(word string) ([]string, error) {
	rows, err := h.db.Instance.Query(
		h.db.Rebind(`SELECT code FROM lexicon WHERE word = ? ORDER BY priority DESC, code`),
		word,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, helper.NewError("scan", err)
		}
		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return codes, nil
}

// SelectAllEntries returns every row ordered by word then code.
func (h *LexiconDBHandler) SelectAllEntries() ([]model.Entry, error) {
	rows, err := h.db.Instance.Query(`SELECT word, code, priority FROM lexicon ORDER BY word, code`)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		var entry model.Entry
		if err := rows.Scan(&entry.Word, &entry.Code, &entry.Priority); err != nil {
			return nil, helper.NewError("scan", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return entries, nil
}

// SelectDistinctCodes returns the distinct code strings in lexical order.
func (h *LexiconDBHandler) SelectDistinctCodes() ([]string, error) {
	rows, err := h.db.Instance.Query(`SELECT DISTINCT code FROM lexicon ORDER BY code`)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, helper.NewError("scan", err)
		}
		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, helper.NewError("rows error", err)
	}

	return codes, nil
}

// CountWords returns the number of distinct words.
func (h *LexiconDBHandler) CountWords() (int, error) {
	var count int
	err := h.db.Instance.QueryRow(`SELECT COUNT(DISTINCT word) FROM lexicon`).Scan(&count)
	if err != nil {
		return 0, helper.NewError("scan", err)
	}
	return count, nil
}
