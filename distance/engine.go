// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dahu/gridgraph"
	"github.com/katalvlaran/dahu/hqueue"
)

// accumulator is the per-variant bookkeeping layered on the shared traversal.
// Indices are row-major offsets into the immersed grid.
type accumulator[T gridgraph.Sample] interface {
	// seed initialises the accumulator at seed index i holding value v.
	seed(i int, v T)
	// visit records that index to, holding f, was reached from index from
	// with step cost diff while serving level d. It returns the level at
	// which to queue to.
	visit(from, to int, f T, diff, d int) int
}

// runner holds the mutable state for a single propagation.
type runner[T gridgraph.Sample] struct {
	m, M    *gridgraph.Grid[T] // interval bounds; read-only
	F       *gridgraph.Grid[T] // propagated signal
	seen    []bool             // visit-once marker
	q       *hqueue.Queue[int] // pending indices
	acc     accumulator[T]
	options Options
	stats   Stats
}

// validate checks the grids, every seed and the options before any work is
// done, and returns the resolved options.
//
// Preconditions and validation (in order):
//  1. m and M are non-nil and non-empty (gridgraph.ErrEmptyGrid).
//  2. m and M have the same shape and len(Data) = Height·Width (ErrShapeMismatch).
//  3. Each seed is in bounds (ErrSeedOutOfBounds) and a 2-face (ErrSeedNotTwoFace).
//  4. Connectivity is Conn4 (ErrOptionViolation).
func validate[T gridgraph.Sample](m, M *gridgraph.Grid[T], seeds []gridgraph.Point, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	if m == nil || M == nil || m.Height <= 0 || m.Width <= 0 {
		return cfg, gridgraph.ErrEmptyGrid
	}
	if !M.SameShape(m.Height, m.Width) {
		return cfg, fmt.Errorf("%w: m is %dx%d, M is %dx%d",
			ErrShapeMismatch, m.Height, m.Width, M.Height, M.Width)
	}
	if n := m.Height * m.Width; len(m.Data) != n || len(M.Data) != n {
		return cfg, fmt.Errorf("%w: %dx%d grid holds %d (m) and %d (M) values",
			ErrShapeMismatch, m.Height, m.Width, len(m.Data), len(M.Data))
	}
	for _, s := range seeds {
		if !m.InBounds(s) {
			return cfg, fmt.Errorf("%w: %v not in %dx%d", ErrSeedOutOfBounds, s, m.Height, m.Width)
		}
		if !gridgraph.IsTwoFace(s) {
			return cfg, fmt.Errorf("%w: %v is a %v", ErrSeedNotTwoFace, s, gridgraph.FaceOf(s))
		}
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Connectivity != gridgraph.Conn4 {
		return cfg, fmt.Errorf("%w: connectivity %v", ErrOptionViolation, cfg.Connectivity)
	}
	return cfg, nil
}

// newRunner allocates the working grids and queue for one call.
func newRunner[T gridgraph.Sample](m, M *gridgraph.Grid[T], acc accumulator[T], cfg Options) *runner[T] {
	levels := cfg.Levels
	if levels == 0 {
		levels = int(slices.Max(M.Data)) + 1
	}
	return &runner[T]{
		m:       m,
		M:       M,
		F:       &gridgraph.Grid[T]{Height: m.Height, Width: m.Width, Data: make([]T, len(m.Data))},
		seen:    make([]bool, len(m.Data)),
		q:       hqueue.New[int](levels),
		acc:     acc,
		options: cfg,
	}
}

// init assigns every seed its own value and queues it at level 0.
// A seed listed twice is only queued once.
func (r *runner[T]) init(seeds []gridgraph.Point) error {
	for _, s := range seeds {
		i := r.m.Index(s)
		if r.seen[i] {
			continue
		}
		v := r.m.Data[i] // m == M on a 2-face
		r.F.Data[i] = v
		r.seen[i] = true
		r.acc.seed(i, v)
		if r.options.OnReach != nil {
			r.options.OnReach(s, s)
		}
		if err := r.q.Push(i, 0); err != nil {
			return err
		}
		r.stats.Seeds++
		r.stats.Visited++
	}
	return nil
}

// process serves the queue until it is empty, expanding each served element
// to its unseen 4-neighbors.
func (r *runner[T]) process() error {
	h, w := r.m.Height, r.m.Width
	m, M, F := r.m.Data, r.M.Data, r.F.Data
	offsets := gridgraph.NeighborOffsets(gridgraph.Conn4)

	for !r.q.Empty() {
		i, d, err := r.q.Pop()
		if err != nil {
			return err
		}
		r.stats.Pops++
		if d > r.stats.MaxLevel {
			r.stats.MaxLevel = d
		}
		p := gridgraph.Point{Row: i / w, Col: i % w}
		if r.options.OnPop != nil {
			r.options.OnPop(p, d)
		}

		fp := F[i]
		for _, off := range offsets {
			n := p.Add(off)
			if n.Row < 0 || n.Row >= h || n.Col < 0 || n.Col >= w {
				continue
			}
			j := n.Row*w + n.Col
			if r.seen[j] {
				continue
			}
			f := clamp(fp, m[j], M[j])
			F[j] = f
			r.seen[j] = true
			r.stats.Visited++
			if r.options.OnReach != nil {
				r.options.OnReach(n, p)
			}
			level := r.acc.visit(i, j, f, absDiff(fp, f), d)
			if err := r.q.Push(j, level); err != nil {
				return err
			}
		}
	}
	return nil
}

// run executes init and process, then publishes stats.
func (r *runner[T]) run(seeds []gridgraph.Point) error {
	if err := r.init(seeds); err != nil {
		return err
	}
	if err := r.process(); err != nil {
		return err
	}
	r.stats.Buckets = r.q.Cap()
	if r.options.Stats != nil {
		*r.options.Stats = r.stats
	}
	return nil
}

// clamp projects v onto [lo, hi].
func clamp[T gridgraph.Sample](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// absDiff returns |a − b| as an int.
func absDiff[T gridgraph.Sample](a, b T) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
