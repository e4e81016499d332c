// SPDX-License-Identifier: MIT

// Package distance computes seeded distance transforms over an immersed
// image (see package immersion).
//
// Overview:
//
//   - Both transforms walk the doubled grid with 4-connectivity, from a set
//     of seed 2-faces, visiting every element exactly once.
//   - A freshly reached element q, seen from the popped element p, takes the
//     value F[q] = clamp(F[p], m[q], M[q]): the point of q's interval closest
//     to the propagated value. The step costs |F[p] − F[q]|.
//   - Elements are served by a hierarchical queue (package hqueue) in
//     non-decreasing level order.
//
// Variants:
//
//   - Dahu: tracks the running min and max of F along the propagation path
//     and returns max − min, the minimum-barrier ("dahu") distance. Elements
//     are queued at their step cost.
//   - LevelLines: accumulates step costs, D[q] = D[p] + |F[p] − F[q]|, and
//     queues elements at D[q], which makes it a Dijkstra search over the
//     weights induced by the immersion. Returns (F, D).
//
// Complexity:
//
//   - Time:  O(N + L) where N = number of immersed elements and L = the
//     largest level pushed (bucket scan).
//   - Space: O(N + L).
//
// Errors (sentinel):
//
//   - gridgraph.ErrEmptyGrid: m or M is nil or empty.
//   - ErrShapeMismatch:       m and M differ in shape.
//   - ErrSeedOutOfBounds:     a seed lies outside the grid.
//   - ErrSeedNotTwoFace:      a seed is a 0-face or 1-face.
//   - ErrOptionViolation:     WithConnectivity asked for anything but Conn4.
//
// All checks run before any propagation. An empty seed list is valid and
// leaves every element unvisited.
//
// Thread safety:
//
//   - Each call allocates its own working grids and queue; concurrent calls
//     on the same read-only m and M are safe.
package distance
