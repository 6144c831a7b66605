package kaggle

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter selects puzzles with a boolean expression over the variables
//
//	id, type, n, w, moves
//
// where n is the number of facelets and moves the submitted solution text,
// for example `type startsWith "cube_" && n <= 96`.
type Filter struct {
	src string
	prg *vm.Program
}

func filterEnv(p *Puzzle, moves string) map[string]any {
	return map[string]any{
		"id":    p.ID,
		"type":  p.Type,
		"n":     len(p.SolutionState),
		"w":     p.Wildcards,
		"moves": moves,
	}
}

// NewFilter compiles src. An empty src selects every puzzle.
func NewFilter(src string) (*Filter, error) {
	f := &Filter{src: src}
	if src == "" {
		return f, nil
	}
	prg, err := expr.Compile(src, expr.Env(filterEnv(&Puzzle{}, "")), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", src, err)
	}
	f.prg = prg
	return f, nil
}

// Match reports whether p with the given solution text is selected. A nil
// Filter selects everything.
func (f *Filter) Match(p *Puzzle, moves string) (bool, error) {
	if f == nil || f.prg == nil {
		return true, nil
	}
	res, err := expr.Run(f.prg, filterEnv(p, moves))
	if err != nil {
		return false, fmt.Errorf("filter %q on puzzle %d: %w", f.src, p.ID, err)
	}
	ok, _ := res.(bool)
	return ok, nil
}

func (f *Filter) String() string { return f.src }
