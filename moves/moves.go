// Package moves parses and formats solutions: sequences of catalogue moves
// written as names joined by '.', each optionally prefixed by '-' for the
// inverse move.
package moves

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Lgeu/santa23/debug"
	"github.com/Lgeu/santa23/puzzle"
)

const (
	Sep     = "."
	Inverse = "-"
)

var ErrUnknownMove = errors.New("invalid move")

// UnknownMoveError names a solution token that is not in the catalogue.
type UnknownMoveError struct {
	Token string
	Index int
}

func (e *UnknownMoveError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownMove, e.Token)
}

func (e *UnknownMoveError) Unwrap() error { return ErrUnknownMove }

// Lookuper resolves move names to catalogue indices.
type Lookuper interface {
	Lookup(name string) (int, bool)
}

// Sequence is a parsed solution.
type Sequence []puzzle.Ref

// Score is the number of moves; lower is better.
func (s Sequence) Score() int { return len(s) }

// Format renders s with the given catalogue names. Powers other than ±1 are
// written as repeated tokens.
func (s Sequence) Format(names []string) string {
	var b strings.Builder
	for _, r := range s {
		tok := names[r.Move]
		p := r.Power
		if p < 0 {
			tok = Inverse + tok
			p = -p
		}
		for range p {
			if b.Len() > 0 {
				b.WriteString(Sep)
			}
			b.WriteString(tok)
		}
	}
	return b.String()
}

// Parse resolves the moves of a solution text. Surrounding whitespace is
// ignored; a blank text holds one empty token, which is not a move.
func Parse(text string, lookup Lookuper) (Sequence, error) {
	text = strings.TrimSpace(text)
	toks := strings.Split(text, Sep)
	res := make(Sequence, 0, len(toks))
	for i, tok := range toks {
		name, power := tok, 1
		if s, ok := strings.CutPrefix(tok, Inverse); ok {
			name, power = s, -1
		}
		id, ok := lookup.Lookup(name)
		if !ok {
			return nil, &UnknownMoveError{Token: name, Index: i}
		}
		res = append(res, puzzle.Ref{Move: id, Power: power})
	}
	if debug.Parse() {
		debug.Logf("parsed %d moves\n", len(res))
	}
	return res, nil
}

// ReadFile parses the solution stored at path.
func ReadFile(path string, lookup Lookuper) (Sequence, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return Parse(string(d), lookup)
}
