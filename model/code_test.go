package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeString(t *testing.T) {
	t.Run("Canonical rendering pads the local sequence", func(t *testing.T) {
		code := Code{
			Superclass:   "0233",
			Local:        1,
			Pos:          Noun,
			Abstractness: Abstract,
			Valence:      Negative,
		}

		assert.Equal(t, "0233-00001-1-2-2", code.String())
		assert.Regexp(t, CodePattern, code.String())
	})

	t.Run("Large local sequence stays five digits", func(t *testing.T) {
		code := Code{Superclass: "0999", Local: 54321, Pos: Adverb, Abstractness: Mixed, Valence: Neutral}

		assert.Equal(t, "0999-54321-4-1-0", code.String())
	})
}

func TestParseCode(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		original := Code{Superclass: "2102", Local: 42, Pos: Verb, Abstractness: Concrete, Valence: Positive}

		parsed, err := ParseCode(original.String())

		require.NoError(t, err)
		assert.Equal(t, original, parsed)
	})

	t.Run("Rejects malformed strings", func(t *testing.T) {
		invalid := []string{
			"",
			"0233-00001-1-2",
			"0233-0001-1-2-2",
			"0233-00001-5-2-2",
			"0233-00001-1-3-2",
			"0233-00001-1-2-3",
			"abcd-00001-1-2-2",
			"0233-00001-1-2-2 ",
		}

		for _, s := range invalid {
			_, err := ParseCode(s)
			assert.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestValenceOpposite(t *testing.T) {
	assert.Equal(t, Negative, Positive.Opposite())
	assert.Equal(t, Positive, Negative.Opposite())
	assert.Equal(t, Neutral, Neutral.Opposite())
}

func TestWithValence(t *testing.T) {
	code := Code{Superclass: "0120", Local: 7, Pos: Noun, Abstractness: Abstract, Valence: Neutral}

	flipped := code.WithValence(Negative)

	assert.Equal(t, Negative, flipped.Valence)
	assert.Equal(t, Neutral, code.Valence, "original must stay untouched")
	assert.Equal(t, code.Superclass, flipped.Superclass)
}
