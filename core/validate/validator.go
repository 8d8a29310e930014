// Package validate runs the post-build consistency checks over a persisted
// lexicon. Determinism and format failures mean the artifact is unfit for
// use; the distribution and sample-lookup checks only report.
package validate

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/oyemi/lexicon/database"
	"github.com/oyemi/lexicon/model"
)

// maxReportedIssues bounds the issue list of a single check so a broken
// build does not produce a multi-megabyte report.
const maxReportedIssues = 25

// CheckResult is the outcome of one independent check.
type CheckResult struct {
	Name     string
	Passed   bool
	Advisory bool
	Issues   []string
}

// Report aggregates all check results of one validation run.
type Report struct {
	Checks []CheckResult
}

// Passed is the logical AND over the non-advisory checks.
func (r Report) Passed() bool {
	for _, check := range r.Checks {
		if !check.Advisory && !check.Passed {
			return false
		}
	}
	return true
}

// Issues flattens the non-advisory failures.
func (r Report) Issues() []string {
	var issues []string
	for _, check := range r.Checks {
		if !check.Advisory && !check.Passed {
			issues = append(issues, check.Issues...)
		}
	}
	return issues
}

// Validator runs the checks against the lexicon table.
type Validator struct {
	lexicon        database.LexiconDBHandlerFunctions
	classification *model.Classification
	log            *slog.Logger
}

// NewValidator creates a validator over the given handler and tables.
func NewValidator(lexicon database.LexiconDBHandlerFunctions, classification *model.Classification, logger *slog.Logger) *Validator {
	return &Validator{
		lexicon:        lexicon,
		classification: classification,
		log:            logger,
	}
}

// Validate runs every check. The expected entries are the pipeline's pure
// recomputation over the same snapshot; pass nil to skip the determinism
// check when no snapshot is at hand (the remaining checks still run).
func (v *Validator) Validate(expected []model.Entry) (Report, error) {
	stored, err := v.lexicon.SelectAllEntries()
	if err != nil {
		return Report{}, err
	}

	var report Report
	if expected != nil {
		report.Checks = append(report.Checks, v.checkDeterminism(stored, expected))
	}
	report.Checks = append(report.Checks,
		v.checkFormat(stored),
		v.checkPosDistribution(stored),
		v.checkSuperclassDistribution(stored),
		v.checkPolysemy(stored),
		v.checkSampleLookups(stored),
	)

	for _, check := range report.Checks {
		v.log.Info("Validation check",
			slog.String("name", check.Name),
			slog.Bool("passed", check.Passed),
			slog.Bool("advisory", check.Advisory),
			slog.Int("issues", len(check.Issues)))
	}

	return report, nil
}

func entryKey(e model.Entry) string {
	return fmt.Sprintf("%s|%s|%d", e.Word, e.Code, e.Priority)
}

// checkDeterminism compares the stored (word, code, priority) set against
// the pure recomputation. Any difference is a hard defect in the build.
func (v *Validator) checkDeterminism(stored, expected []model.Entry) CheckResult {
	result := CheckResult{Name: "determinism", Passed: true}

	storedSet := make(map[string]bool, len(stored))
	for _, e := range stored {
		storedSet[entryKey(e)] = true
	}
	expectedSet := make(map[string]bool, len(expected))
	for _, e := range expected {
		expectedSet[entryKey(e)] = true
	}

	for _, e := range expected {
		if !storedSet[entryKey(e)] {
			result.addIssue(fmt.Sprintf("missing from store: %s", entryKey(e)))
		}
	}
	for _, e := range stored {
		if !expectedSet[entryKey(e)] {
			result.addIssue(fmt.Sprintf("unexpected in store: %s", entryKey(e)))
		}
	}

	result.Passed = len(result.Issues) == 0
	return result
}

// checkFormat verifies every distinct stored code against the wire pattern.
func (v *Validator) checkFormat(stored []model.Entry) CheckResult {
	result := CheckResult{Name: "code format", Passed: true}

	seen := make(map[string]bool)
	for _, e := range stored {
		if seen[e.Code] {
			continue
		}
		seen[e.Code] = true
		if !model.CodePattern.MatchString(e.Code) {
			result.addIssue(fmt.Sprintf("invalid format: %s", e.Code))
		}
	}

	result.Passed = len(result.Issues) == 0
	return result
}

// checkPosDistribution reports the POS histogram. Informational only.
func (v *Validator) checkPosDistribution(stored []model.Entry) CheckResult {
	result := CheckResult{Name: "pos distribution", Passed: true, Advisory: true}

	histogram := make(map[model.Pos]int)
	for _, e := range stored {
		code, err := model.ParseCode(e.Code)
		if err != nil {
			continue
		}
		histogram[code.Pos]++
	}

	for _, pos := range []model.Pos{model.Noun, model.Verb, model.Adjective, model.Adverb} {
		v.log.Info("POS distribution", slog.String("pos", pos.String()), slog.Int("entries", histogram[pos]))
		if histogram[pos] == 0 {
			result.Issues = append(result.Issues, fmt.Sprintf("no entries for %s", pos))
		}
	}

	return result
}

// checkSuperclassDistribution reports the superclass histogram, largest
// first. Informational only.
func (v *Validator) checkSuperclassDistribution(stored []model.Entry) CheckResult {
	result := CheckResult{Name: "superclass distribution", Passed: true, Advisory: true}

	histogram := make(map[string]int)
	for _, e := range stored {
		if len(e.Code) >= 4 {
			histogram[e.Code[:4]]++
		}
	}

	type bucket struct {
		superclass string
		count      int
	}
	buckets := make([]bucket, 0, len(histogram))
	for superclass, count := range histogram {
		buckets = append(buckets, bucket{superclass, count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return buckets[i].superclass < buckets[j].superclass
	})

	top := buckets
	if len(top) > 15 {
		top = top[:15]
	}
	for _, b := range top {
		v.log.Info("Superclass distribution", slog.String("superclass", b.superclass), slog.Int("entries", b.count))
	}

	if len(histogram) == 0 {
		result.Issues = append(result.Issues, "no superclasses recorded")
	}
	return result
}

// checkPolysemy reports how many words carry how many senses. Informational
// only.
func (v *Validator) checkPolysemy(stored []model.Entry) CheckResult {
	result := CheckResult{Name: "polysemy", Passed: true, Advisory: true}

	senses := make(map[string]int)
	for _, e := range stored {
		senses[e.Word]++
	}

	histogram := make(map[int]int)
	for _, count := range senses {
		histogram[count]++
	}

	counts := make([]int, 0, len(histogram))
	for count := range histogram {
		counts = append(counts, count)
	}
	sort.Ints(counts)
	for _, count := range counts {
		v.log.Info("Polysemy distribution", slog.Int("senses", count), slog.Int("words", histogram[count]))
	}

	return result
}

// checkSampleLookups reports presence of the fixed probe words.
// Informational only; a small fixture snapshot legitimately misses most.
func (v *Validator) checkSampleLookups(stored []model.Entry) CheckResult {
	result := CheckResult{Name: "sample lookups", Passed: true, Advisory: true}

	words := make(map[string]int)
	for _, e := range stored {
		words[e.Word]++
	}

	for _, probe := range v.classification.ProbeWords {
		count := words[probe]
		v.log.Info("Sample lookup", slog.String("word", probe), slog.Int("codes", count))
		if count == 0 {
			result.Issues = append(result.Issues, fmt.Sprintf("word not found: %s", probe))
		}
	}

	return result
}

func (c *CheckResult) addIssue(issue string) {
	if len(c.Issues) < maxReportedIssues {
		c.Issues = append(c.Issues, issue)
	}
}
