// SPDX-License-Identifier: MIT

package distance

import "github.com/katalvlaran/dahu/gridgraph"

// rangeAcc tracks the running minimum and maximum of F along each
// propagation path.
type rangeAcc[T gridgraph.Sample] struct {
	lo, hi []T
}

func (a *rangeAcc[T]) seed(i int, v T) {
	a.lo[i] = v
	a.hi[i] = v
}

func (a *rangeAcc[T]) visit(from, to int, f T, diff, _ int) int {
	a.lo[to] = min(f, a.lo[from])
	a.hi[to] = max(f, a.hi[from])
	return diff
}

// Dahu computes the minimum-barrier ("dahu") distance transform of the
// immersed image (m, M) from seeds.
//
// Each element q gets max − min of the propagated values along the path by
// which q was first reached; the result is 0 at seeds and inside flat regions
// connected to a seed, and grows with the contrast of the level lines that
// separate q from every seed. Elements are queued at their step cost, so the
// queue level is the largest single step seen so far.
//
// Unreached elements (only possible with no seeds) are 0.
//
// Errors: see the package documentation; all are detected before propagation.
func Dahu[T gridgraph.Sample](m, M *gridgraph.Grid[T], seeds []gridgraph.Point, opts ...Option) (*gridgraph.Grid[T], error) {
	cfg, err := validate(m, M, seeds, opts)
	if err != nil {
		return nil, err
	}
	acc := &rangeAcc[T]{
		lo: make([]T, len(m.Data)),
		hi: make([]T, len(m.Data)),
	}
	r := newRunner(m, M, acc, cfg)
	if err := r.run(seeds); err != nil {
		return nil, err
	}

	out := &gridgraph.Grid[T]{Height: m.Height, Width: m.Width, Data: acc.hi}
	for i, lo := range acc.lo {
		out.Data[i] -= lo
	}
	return out, nil
}
