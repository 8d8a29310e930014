package model

// Entry is one (word, code) row of the lexicon with its sense priority.
// A word may own many codes, never the same code twice.
type Entry struct {
	Word     string
	Code     string
	Priority int
}

// BaseForm maps a surface word to its canonical base form. Rows exist only
// when the two differ.
type BaseForm struct {
	Word  string
	Lemma string
}

// AntonymPair is a symmetric opposite-meaning relation between two surface
// words.
type AntonymPair struct {
	Word    string
	Antonym string
}
