package lexicon

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/oyemi/lexicon/core/pipeline"
	"github.com/oyemi/lexicon/core/validate"
	"github.com/oyemi/lexicon/database"
	"github.com/oyemi/lexicon/helper"
	"github.com/oyemi/lexicon/kb"
	"github.com/oyemi/lexicon/model"
)

// Lexicon provides a unified interface to the build pipeline and all
// database handlers.
type Lexicon struct {
	DB             *helper.Database
	Entries        *database.LexiconDBHandler
	Lemmas         *database.LemmasDBHandler
	Antonyms       *database.AntonymsDBHandler
	Classification *model.Classification
	Pipeline       *pipeline.Pipeline
	// Logging
	log *slog.Logger
}

// NewLexicon opens an existing lexicon artifact for lookups. The artifact
// is kept as is; use NewRebuildLexicon to produce a fresh one.
func NewLexicon(config *helper.DatabaseConfiguration) (*Lexicon, error) {
	return newLexicon(config, false)
}

// NewRebuildLexicon deletes any existing artifact and opens a fresh one,
// ready for Build. If the stale artifact cannot be removed or reopened the
// database layer redirects to an alternate sibling path instead of failing.
func NewRebuildLexicon(config *helper.DatabaseConfiguration) (*Lexicon, error) {
	return newLexicon(config, true)
}

func newLexicon(config *helper.DatabaseConfiguration, rebuild bool) (*Lexicon, error) {
	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	// Initialize database
	var db *helper.Database
	var err error
	if rebuild {
		db, err = helper.NewRebuildDatabase(config, logger)
	} else {
		db, err = helper.NewDatabase(config, logger)
	}
	if err != nil {
		return nil, helper.NewError("initialize database", err)
	}

	// Create all handlers
	entries, err := database.NewLexiconDBHandler(db)
	if err != nil {
		return nil, helper.NewError("create lexicon handler", err)
	}

	lemmas, err := database.NewLemmasDBHandler(db)
	if err != nil {
		return nil, helper.NewError("create lemmas handler", err)
	}

	antonyms, err := database.NewAntonymsDBHandler(db)
	if err != nil {
		return nil, helper.NewError("create antonyms handler", err)
	}

	classification := model.DefaultClassification()

	return &Lexicon{
		DB:             db,
		Entries:        entries,
		Lemmas:         lemmas,
		Antonyms:       antonyms,
		Classification: classification,
		Pipeline:       pipeline.NewPipeline(classification, kb.NewMorphy(), logger),
		log:            logger,
	}, nil
}

// Close closes the database connection.
func (l *Lexicon) Close() error {
	if l.DB != nil && l.DB.Instance != nil {
		return l.DB.Instance.Close()
	}
	return nil
}

// SetClassification replaces the default tables and rewires the pipeline.
// Must be called before Build.
func (l *Lexicon) SetClassification(classification *model.Classification) {
	l.Classification = classification
	l.Pipeline = pipeline.NewPipeline(classification, kb.NewMorphy(), l.log)
}

// Build runs the full pipeline over the knowledge base and persists the
// result in three strictly sequential phases:
//  1. bulk insert of the assigned entries,
//  2. point updates from antonym propagation, keyed by the exact old code,
//  3. point updates from the terminal override pass.
//
// Base forms and antonym pairs are stored after the entry phases. Returns
// the build report.
func (l *Lexicon) Build(source kb.KnowledgeBase) (*model.BuildStats, error) {
	concepts, err := source.Concepts()
	if err != nil {
		return nil, helper.NewError("load knowledge base", err)
	}
	l.log.Info("Loaded knowledge base", slog.Int("concepts", len(concepts)))

	assigned := l.Pipeline.Assign(concepts)
	l.log.Info("Assigned codes",
		slog.Int("entries", assigned.Stats.Entries),
		slog.Int("words", assigned.Stats.Words),
		slog.Int("dropped", assigned.Stats.Dropped))

	// Phase 1: bulk insert of the assigned state.
	inserted, err := l.Entries.InsertEntries(assigned.Entries)
	if err != nil {
		return nil, helper.NewError("insert lexicon entries", err)
	}
	l.log.Info("Inserted lexicon entries", slog.Int("inserted", inserted))

	// Phase 2: antonym propagation as point updates.
	propagated, flips := l.Pipeline.PropagateAntonyms(assigned)
	for _, update := range flips {
		if err := l.Entries.UpdateCode(update.Word, update.OldCode, update.NewCode); err != nil {
			return nil, helper.NewError("apply antonym update", err)
		}
	}
	l.log.Info("Propagated antonym valences", slog.Int("flips", len(flips)))

	// Phase 3: terminal overrides as point updates.
	final, pins := l.Pipeline.ApplyOverrides(propagated)
	for _, update := range pins {
		if err := l.Entries.UpdateCode(update.Word, update.OldCode, update.NewCode); err != nil {
			return nil, helper.NewError("apply override update", err)
		}
	}
	l.log.Info("Applied terminal overrides", slog.Int("rewrites", len(pins)))

	if _, err := l.Lemmas.InsertBaseForms(final.BaseForms); err != nil {
		return nil, helper.NewError("insert base forms", err)
	}
	if _, err := l.Antonyms.InsertPairs(final.Antonyms); err != nil {
		return nil, helper.NewError("insert antonym pairs", err)
	}

	l.log.Info("Build finished",
		slog.Int("entries", final.Stats.Entries),
		slog.Int("words", final.Stats.Words),
		slog.Int("baseForms", final.Stats.BaseForms),
		slog.Int("antonymPairs", final.Stats.AntonymPairs))

	return final.Stats, nil
}

// Lookup returns the word's codes ordered by priority, highest first. An
// unknown word falls back to its stored base form before giving up; a
// lookup miss is an empty slice, not an error.
func (l *Lexicon) Lookup(word string) ([]string, error) {
	codes, err := l.Entries.SelectCodes(word)
	if err != nil {
		return nil, helper.NewError("lookup word", err)
	}
	if len(codes) > 0 {
		return codes, nil
	}

	base, err := l.Lemmas.SelectBaseForm(word)
	if err != nil {
		return nil, helper.NewError("lookup base form", err)
	}
	if base == "" {
		return nil, nil
	}

	codes, err = l.Entries.SelectCodes(base)
	if err != nil {
		return nil, helper.NewError("lookup base form word", err)
	}
	return codes, nil
}

// LookupAntonyms returns the stored antonym partners of the word, both
// directions of each pair.
func (l *Lexicon) LookupAntonyms(word string) ([]string, error) {
	return l.Antonyms.SelectAntonyms(word)
}

// Validate recomputes the lexicon from the same knowledge base and checks
// the stored artifact against it, plus the format and distribution checks.
// Pass nil to run without the determinism comparison.
func (l *Lexicon) Validate(source kb.KnowledgeBase) (validate.Report, error) {
	var expected []model.Entry
	if source != nil {
		concepts, err := source.Concepts()
		if err != nil {
			return validate.Report{}, helper.NewError("load knowledge base", err)
		}
		state, _, _ := l.Pipeline.Run(concepts)
		expected = state.Entries
	}

	validator := validate.NewValidator(l.Entries, l.Classification, l.log)
	report, err := validator.Validate(expected)
	if err != nil {
		return validate.Report{}, helper.NewError("validate lexicon", err)
	}
	if !report.Passed() {
		l.log.Error("Validation failed", slog.Int("issues", len(report.Issues())))
	}
	return report, nil
}

// FormatStats renders the build report for the example binaries.
func FormatStats(stats *model.BuildStats) string {
	return fmt.Sprintf(
		"concepts=%d entries=%d words=%d baseForms=%d antonymPairs=%d dropped=%d neutral=%d positive=%d negative=%d flips=%d overrides=%d",
		stats.Concepts, stats.Entries, stats.Words, stats.BaseForms, stats.AntonymPairs, stats.Dropped,
		stats.Neutral, stats.Positive, stats.Negative, stats.AntonymFlips, stats.OverrideWrites)
}
