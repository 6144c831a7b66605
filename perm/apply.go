package perm

import "github.com/Lgeu/santa23/debug"

// ApplyInPlace applies p to x |power| times, using the inverse of p when
// power is negative. A power of zero leaves x untouched.
//
// Every step reads all source positions before writing any destination, so
// pairs sharing positions see the labeling as it was before the step.
func ApplyInPlace[T any](p *Sparse, x []T, power int) {
	if power == 0 || p.IsIdentity() {
		return
	}
	inverse := power < 0
	if inverse {
		power = -power
	}
	if debug.Apply() {
		debug.Logf("apply %s power=%d inverse=%t\n", p, power, inverse)
	}
	buf := make([]T, len(p.pairs))
	for range power {
		if inverse {
			for i, pr := range p.pairs {
				buf[i] = x[pr.From]
			}
			for i, pr := range p.pairs {
				x[pr.To] = buf[i]
			}
			continue
		}
		for i, pr := range p.pairs {
			buf[i] = x[pr.To]
		}
		for i, pr := range p.pairs {
			x[pr.From] = buf[i]
		}
	}
}

// Apply is like ApplyInPlace but returns a new slice and leaves x as is.
func Apply[T any](p *Sparse, x []T, power int) []T {
	res := make([]T, len(x))
	copy(res, x)
	ApplyInPlace(p, res, power)
	return res
}
