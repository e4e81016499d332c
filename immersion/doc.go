// SPDX-License-Identifier: MIT

// Package immersion builds the interval representation of a raster on the
// doubled (interpixel) grid.
//
// An H×W image is immersed into two grids m and M of shape (2H−1)×(2W−1):
//
//	row\col   even          odd
//	even      2-face        1-face
//	odd       1-face        0-face
//
//   - 2-face: an original pixel; m = M = pixel value.
//   - 1-face: an edge between two pixels; [m, M] spans their two values.
//   - 0-face: a vertex among four pixels; [m, M] spans their four values.
//
// The interval [m[p], M[p]] is the set of values an interpolation of the
// image may take at p. Distance transforms later pick, inside each interval,
// the value closest to the one being propagated.
//
// Complexity: Immerse is O(H×W) time and memory.
//
// Errors:
//
//   - gridgraph.ErrEmptyGrid: nil input or an input with no rows or columns.
package immersion
