package puzzle

import (
	"errors"
	"fmt"

	"github.com/Lgeu/santa23/perm"
)

var (
	ErrMalformed     = errors.New("malformed instance")
	ErrDuplicateMove = errors.New("duplicate move name")
)

// Labeling assigns a label to every position of a puzzle.
type Labeling []int

func (l Labeling) Clone() Labeling {
	res := make(Labeling, len(l))
	copy(res, l)
	return res
}

// Ref refers to a catalogue move by index. Power is +1 for the move itself,
// -1 for its inverse.
type Ref struct {
	Move  int
	Power int
}

// Instance is a loaded puzzle. It is not modified after construction.
type Instance struct {
	N, M, W int
	Type    string
	Names   []string
	Target  Labeling
	Initial Labeling
	Moves   []*perm.Sparse

	// Prior is a solution carried in a merged instance file, if any.
	Prior []Ref

	index map[string]int
}

// New builds an Instance from dense move mappings, checking that labelings
// and mappings have matching lengths, names are unique and every mapping is
// a permutation.
func New(typ string, names []string, target, initial Labeling, mappings [][]int, w int) (*Instance, error) {
	n := len(target)
	if len(initial) != n {
		return nil, &LoadError{Err: fmt.Errorf("%w: initial has %d facelets, target has %d", ErrMalformed, len(initial), n)}
	}
	if len(mappings) != len(names) {
		return nil, &LoadError{Err: fmt.Errorf("%w: %d move names for %d mappings", ErrMalformed, len(names), len(mappings))}
	}
	if w < 0 {
		return nil, &LoadError{Err: fmt.Errorf("%w: negative wildcards %d", ErrMalformed, w)}
	}
	inst := &Instance{
		N:       n,
		M:       len(names),
		W:       w,
		Type:    typ,
		Names:   names,
		Target:  target,
		Initial: initial,
		Moves:   make([]*perm.Sparse, len(names)),
		index:   make(map[string]int, len(names)),
	}
	for i, name := range names {
		if _, ok := inst.index[name]; ok {
			return nil, &LoadError{Move: name, Err: ErrDuplicateMove}
		}
		inst.index[name] = i
		if len(mappings[i]) != n {
			return nil, &LoadError{Move: name, Err: fmt.Errorf("%w: mapping has %d entries, want %d", ErrMalformed, len(mappings[i]), n)}
		}
		p, err := perm.New(mappings[i])
		if err != nil {
			return nil, &LoadError{Move: name, Err: err}
		}
		inst.Moves[i] = p
	}
	return inst, nil
}

// Lookup returns the catalogue index of the named move.
func (inst *Instance) Lookup(name string) (int, bool) {
	i, ok := inst.index[name]
	return i, ok
}

func (inst *Instance) Move(i int) *perm.Sparse { return inst.Moves[i] }

// Mappings returns the dense mapping of every move in catalogue order.
func (inst *Instance) Mappings() [][]int {
	res := make([][]int, len(inst.Moves))
	for i, p := range inst.Moves {
		res[i] = p.Mapping()
	}
	return res
}

// LoadError reports a structurally invalid instance.
type LoadError struct {
	Source string
	Move   string
	Err    error
}

func (e *LoadError) Error() string {
	msg := e.Err.Error()
	if e.Move != "" {
		msg = fmt.Sprintf("move %q: %s", e.Move, msg)
	}
	if e.Source != "" {
		msg = e.Source + ": " + msg
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Err }
