package resolve

import (
	"testing"

	"github.com/oyemi/lexicon/model"
	"github.com/stretchr/testify/assert"
)

func TestLexicalValence(t *testing.T) {
	resolver := NewValenceResolver(testClassification())

	t.Run("Larger score wins regardless of magnitude", func(t *testing.T) {
		valence, strength := resolver.Lexical(0.05, 0.02)
		assert.Equal(t, model.Positive, valence)
		assert.Equal(t, model.None, strength)

		valence, strength = resolver.Lexical(0.05, 0.40)
		assert.Equal(t, model.Negative, valence)
		assert.Equal(t, model.Strong, strength)
	})

	t.Run("Tie is neutral", func(t *testing.T) {
		valence, strength := resolver.Lexical(0, 0)
		assert.Equal(t, model.Neutral, valence)
		assert.Equal(t, model.None, strength)

		valence, _ = resolver.Lexical(0.3, 0.3)
		assert.Equal(t, model.Neutral, valence)
	})

	t.Run("Strength buckets track the winning score", func(t *testing.T) {
		_, strength := resolver.Lexical(0.12, 0.02)
		assert.Equal(t, model.Weak, strength)

		_, strength = resolver.Lexical(0.25, 0.02)
		assert.Equal(t, model.Strong, strength)
	})
}

func TestResolveWithOverride(t *testing.T) {
	resolver := NewValenceResolver(testClassification())

	t.Run("Override replaces the lexical result unconditionally", func(t *testing.T) {
		// lexical scores alone would say positive
		valence, _ := resolver.Resolve("fired", 0.5, 0.0)
		assert.Equal(t, model.Negative, valence)

		valence, _ = resolver.Resolve("hired", 0.0, 0.5)
		assert.Equal(t, model.Positive, valence)
	})

	t.Run("Words off the override table keep the lexical result", func(t *testing.T) {
		valence, _ := resolver.Resolve("cat", 0.5, 0.0)
		assert.Equal(t, model.Positive, valence)
	})
}

func TestPriority(t *testing.T) {
	t.Run("Frequency dominates among specific senses", func(t *testing.T) {
		low := Priority(5, true, 0)
		high := Priority(50, true, 0)

		assert.Greater(t, high, low)
	})

	t.Run("Specific classification beats any realistic frequency", func(t *testing.T) {
		fallback := Priority(900, false, 0)
		specific := Priority(0, true, 0)

		assert.Greater(t, specific, fallback)
	})

	t.Run("Ordinal bonus decays and never goes negative", func(t *testing.T) {
		assert.Equal(t, 10, Priority(0, false, 0))
		assert.Equal(t, 1, Priority(0, false, 9))
		assert.Equal(t, 0, Priority(0, false, 10))
		assert.Equal(t, 0, Priority(0, false, 25))
	})
}

func TestEncoder(t *testing.T) {
	t.Run("Counters are per superclass and monotonic", func(t *testing.T) {
		encoder := NewEncoder()

		first := encoder.Encode("0233", model.Noun, model.Abstract, model.Negative)
		second := encoder.Encode("0233", model.Noun, model.Mixed, model.Neutral)
		other := encoder.Encode("2102", model.Verb, model.Mixed, model.Negative)

		assert.Equal(t, "0233-00001-1-2-2", first.String())
		assert.Equal(t, "0233-00002-1-1-0", second.String())
		assert.Equal(t, "2102-00001-2-1-2", other.String())
	})

	t.Run("Fresh encoder reproduces the same sequence", func(t *testing.T) {
		a := NewEncoder()
		b := NewEncoder()

		for i := 0; i < 5; i++ {
			ca := a.Encode("0120", model.Noun, model.Abstract, model.Neutral)
			cb := b.Encode("0120", model.Noun, model.Abstract, model.Neutral)
			assert.Equal(t, ca.String(), cb.String())
		}
	})
}
