// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"math"

	"github.com/katalvlaran/dahu/gridgraph"
)

// Sentinel errors returned by the transforms.
var (
	// ErrShapeMismatch indicates m and M do not have the same dimensions.
	ErrShapeMismatch = errors.New("distance: m and M shapes differ")

	// ErrSeedOutOfBounds indicates a seed coordinate outside the immersed grid.
	ErrSeedOutOfBounds = errors.New("distance: seed out of bounds")

	// ErrSeedNotTwoFace indicates a seed that does not correspond to a pixel.
	ErrSeedNotTwoFace = errors.New("distance: seed is not a 2-face")

	// ErrOptionViolation indicates an option value the transforms do not support.
	ErrOptionViolation = errors.New("distance: unsupported option")
)

// Unseen marks elements of a level-lines distance map that were never reached.
const Unseen = math.MaxUint32

// Stats reports counters of one propagation run.
type Stats struct {
	Seeds    int // number of seeds pushed
	Visited  int // elements assigned a value (seeds included)
	Pops     int // items served by the queue
	MaxLevel int // highest level served
	Buckets  int // queue ring size at the end of the run
}

// Options configures a transform run.
//
//   - OnPop: called for every element served by the queue, with its level.
//   - OnReach: called once per element when it is first assigned, with the
//     element it was reached from (a seed is reached from itself).
//   - Stats: if non-nil, filled with run counters on return.
//   - Levels: queue ring size; 0 means max(M)+1, which bounds every step
//     cost, so the ring never grows.
//   - Connectivity: neighbourhood on the immersed grid; only Conn4 is
//     valid, since faces already join diagonal pixels through 0-faces.
type Options struct {
	OnPop        func(p gridgraph.Point, level int)
	OnReach      func(p, parent gridgraph.Point)
	Stats        *Stats
	Levels       int
	Connectivity gridgraph.Connectivity
}

// Option represents a functional option for configuring a transform.
type Option func(*Options)

// WithOnPop registers a callback invoked as each element leaves the queue.
func WithOnPop(fn func(p gridgraph.Point, level int)) Option {
	return func(o *Options) {
		o.OnPop = fn
	}
}

// WithOnReach registers a callback invoked when an element is first assigned.
func WithOnReach(fn func(p, parent gridgraph.Point)) Option {
	return func(o *Options) {
		o.OnReach = fn
	}
}

// WithStats asks the transform to fill s with run counters.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// WithLevels pre-allocates n queue buckets. Values ≤ 0 keep the default.
func WithLevels(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Levels = n
		}
	}
}

// WithConnectivity sets the propagation neighbourhood. Anything but
// gridgraph.Conn4 makes the transform fail with ErrOptionViolation.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) {
		o.Connectivity = c
	}
}

// DefaultOptions returns Options with no hooks, no stats, automatic bucket
// sizing and 4-connectivity.
func DefaultOptions() Options {
	return Options{Connectivity: gridgraph.Conn4}
}
