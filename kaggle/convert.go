package kaggle

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/Lgeu/santa23/puzzle"
)

var (
	ErrUnknownType  = errors.New("unknown puzzle type")
	ErrUnknownLabel = errors.New("unknown facelet label")
)

// FaceletMap numbers the distinct labels of a solution state. Labels are
// ordered by the code point of their first character plus ten times their
// numeric suffix ("A" < "B", "N1" < "N2"), ties broken by the label itself.
func FaceletMap(state []string) (map[string]int, error) {
	type keyed struct {
		key   int
		label string
	}
	seen := map[string]bool{}
	var ks []keyed
	for _, k := range state {
		if seen[k] {
			continue
		}
		seen[k] = true
		key, err := faceletKey(k)
		if err != nil {
			return nil, err
		}
		ks = append(ks, keyed{key, k})
	}
	sort.Slice(ks, func(i, j int) bool {
		if ks[i].key != ks[j].key {
			return ks[i].key < ks[j].key
		}
		return ks[i].label < ks[j].label
	})
	res := make(map[string]int, len(ks))
	for i, k := range ks {
		res[k.label] = i
	}
	return res, nil
}

func faceletKey(k string) (int, error) {
	r, size := utf8.DecodeRuneInString(k)
	if size == 0 {
		return 0, fmt.Errorf("%w: empty label", ErrUnknownLabel)
	}
	suffix, err := strconv.Atoi(k[size:] + "0")
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrUnknownLabel, k, err)
	}
	return int(r) + suffix, nil
}

// Instance converts p into a puzzle instance using the move catalogue of its
// type.
func (p *Puzzle) Instance(info Info) (*puzzle.Instance, error) {
	ms, ok := info[p.Type]
	if !ok {
		return nil, fmt.Errorf("puzzle %d: %w: %q", p.ID, ErrUnknownType, p.Type)
	}
	fm, err := FaceletMap(p.SolutionState)
	if err != nil {
		return nil, fmt.Errorf("puzzle %d: %w", p.ID, err)
	}
	target, err := labels(fm, p.SolutionState)
	if err != nil {
		return nil, fmt.Errorf("puzzle %d: solution_state: %w", p.ID, err)
	}
	initial, err := labels(fm, p.InitialState)
	if err != nil {
		return nil, fmt.Errorf("puzzle %d: initial_state: %w", p.ID, err)
	}
	inst, err := puzzle.New(p.Type, ms.Names, target, initial, ms.Mappings, p.Wildcards)
	if err != nil {
		var lErr *puzzle.LoadError
		if errors.As(err, &lErr) {
			lErr.Source = "puzzle " + strconv.Itoa(p.ID)
			return nil, lErr
		}
		return nil, err
	}
	return inst, nil
}

func labels(fm map[string]int, state []string) (puzzle.Labeling, error) {
	res := make(puzzle.Labeling, len(state))
	for i, k := range state {
		v, ok := fm[k]
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownLabel, k, i)
		}
		res[i] = v
	}
	return res, nil
}
