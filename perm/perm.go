package perm

import (
	"errors"
	"fmt"
)

var ErrNotPermutation = errors.New("not a permutation")

// Pair is one moved position: under a forward step the label at To is
// written to From.
type Pair struct {
	From, To int
}

// Sparse is an immutable permutation which omits its fixed points.
type Sparse struct {
	n     int
	pairs []Pair
}

// New builds a Sparse from a dense mapping where mapping[i] is the
// destination of position i.
func New(mapping []int) (*Sparse, error) {
	seen := make([]bool, len(mapping))
	moved := 0
	for i, j := range mapping {
		if j < 0 || j >= len(mapping) {
			return nil, fmt.Errorf("%w: position %d maps to %d, out of range [0, %d)", ErrNotPermutation, i, j, len(mapping))
		}
		if seen[j] {
			return nil, fmt.Errorf("%w: position %d maps to %d twice", ErrNotPermutation, i, j)
		}
		seen[j] = true
		if i != j {
			moved++
		}
	}
	pairs := make([]Pair, 0, moved)
	for i, j := range mapping {
		if i == j {
			continue
		}
		pairs = append(pairs, Pair{From: i, To: j})
	}
	return &Sparse{n: len(mapping), pairs: pairs}, nil
}

func MustNew(mapping []int) *Sparse {
	p, err := New(mapping)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of positions moved.
func (p *Sparse) Len() int { return len(p.pairs) }

func (p *Sparse) IsIdentity() bool { return len(p.pairs) == 0 }

// Pairs returns a copy of the stored pairs in ascending From order.
func (p *Sparse) Pairs() []Pair {
	res := make([]Pair, len(p.pairs))
	copy(res, p.pairs)
	return res
}

// Mapping returns the dense mapping p was built from.
func (p *Sparse) Mapping() []int {
	res := make([]int, p.n)
	for i := range res {
		res[i] = i
	}
	for _, pr := range p.pairs {
		res[pr.From] = pr.To
	}
	return res
}

func (p *Sparse) String() string {
	return fmt.Sprintf("perm(n=%d moved=%d)", p.n, len(p.pairs))
}
