// SPDX-License-Identifier: MIT

package distance

import "github.com/katalvlaran/dahu/gridgraph"

// LevelLines computes the level-lines distance transform of the immersed
// image (m, M) from seeds.
//
// Returns:
//
//   - F: the propagated signal, F[p] ∈ [m[p], M[p]] for every visited p.
//   - D: the cumulative cost of crossing level lines from the nearest seed,
//     D[seed] = 0 and D[q] = D[p] + |F[p] − F[q]| where p is the element q
//     was first reached from. Unreached elements hold Unseen.
//
// Elements are queued at D, so they are served in non-decreasing distance
// and D is a shortest-path distance over the non-negative step costs.
//
// Errors: see the package documentation; all are detected before propagation.
func LevelLines[T gridgraph.Sample](m, M *gridgraph.Grid[T], seeds []gridgraph.Point, opts ...Option) (*gridgraph.Grid[T], *gridgraph.Grid[uint32], error) {
	cfg, err := validate(m, M, seeds, opts)
	if err != nil {
		return nil, nil, err
	}
	D := &gridgraph.Grid[uint32]{Height: m.Height, Width: m.Width, Data: make([]uint32, len(m.Data))}
	D.Fill(Unseen)

	acc := &sumAcc[T]{D: D.Data}
	r := newRunner(m, M, acc, cfg)
	if err := r.run(seeds); err != nil {
		return nil, nil, err
	}
	return r.F, D, nil
}

// sumAcc accumulates step costs into a geodesic distance.
type sumAcc[T gridgraph.Sample] struct {
	D []uint32
}

func (a *sumAcc[T]) seed(i int, _ T) {
	a.D[i] = 0
}

func (a *sumAcc[T]) visit(_, to int, _ T, diff, d int) int {
	nd := uint64(d) + uint64(diff)
	if nd >= Unseen {
		nd = Unseen - 1
	}
	a.D[to] = uint32(nd)
	return int(nd)
}
