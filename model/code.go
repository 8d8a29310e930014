package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Abstractness is the fourth code field.
type Abstractness int

const (
	Concrete Abstractness = 0
	Mixed    Abstractness = 1
	Abstract Abstractness = 2
)

// Valence is the fifth code field.
type Valence int

const (
	Neutral  Valence = 0
	Positive Valence = 1
	Negative Valence = 2
)

// Opposite flips positive and negative; neutral stays neutral.
func (v Valence) Opposite() Valence {
	switch v {
	case Positive:
		return Negative
	case Negative:
		return Positive
	default:
		return Neutral
	}
}

// CodePattern is the binding wire contract for stored codes. Any consumer
// parsing a code must reject strings that fail this pattern.
var CodePattern = regexp.MustCompile(`^\d{4}-\d{5}-[1-4]-[0-2]-[0-2]$`)

// Code is the composite semantic classification code HHHH-LLLLL-P-A-V.
type Code struct {
	Superclass   string // 4 digits
	Local        int    // per-superclass sequence, 5 digits
	Pos          Pos
	Abstractness Abstractness
	Valence      Valence
}

// String renders the canonical dash-joined form.
func (c Code) String() string {
	return fmt.Sprintf("%s-%05d-%d-%d-%d", c.Superclass, c.Local, c.Pos, c.Abstractness, c.Valence)
}

// WithValence returns a copy of c carrying the given valence digit.
func (c Code) WithValence(v Valence) Code {
	c.Valence = v
	return c
}

// ParseCode parses a canonical code string, rejecting anything that fails
// CodePattern.
func ParseCode(s string) (Code, error) {
	if !CodePattern.MatchString(s) {
		return Code{}, fmt.Errorf("invalid code format: %q", s)
	}

	parts := strings.Split(s, "-")
	local, err := strconv.Atoi(parts[1])
	if err != nil {
		return Code{}, fmt.Errorf("invalid local sequence in %q: %w", s, err)
	}
	pos, _ := strconv.Atoi(parts[2])
	abstractness, _ := strconv.Atoi(parts[3])
	valence, _ := strconv.Atoi(parts[4])

	return Code{
		Superclass:   parts[0],
		Local:        local,
		Pos:          Pos(pos),
		Abstractness: Abstractness(abstractness),
		Valence:      Valence(valence),
	}, nil
}
