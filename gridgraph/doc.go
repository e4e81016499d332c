// SPDX-License-Identifier: MIT

// Package gridgraph treats a dense 2D raster as an implicit graph whose
// vertices are cells and whose edges join orthogonal (or diagonal) neighbours.
//
// What:
//
//   - Grid[T] stores H×W samples row-major and is addressed by Point{Row, Col}.
//   - Face classifies a cell of a doubled (Khalimsky-style) grid by the parity
//     of its coordinates: Face2 (pixel), Face1 (edge), Face0 (vertex).
//   - ConnectedComponents groups non-zero cells of a mask into regions.
//
// Why:
//
//   - Distance transforms over immersed images walk this implicit graph
//     without ever materialising vertices or edges.
//   - Mask components let callers count user strokes before seeding.
//
// Complexity:
//
//   - New, FromRows, Clone:   O(H×W) time and memory.
//   - At, Set, InBounds:      O(1).
//   - ConnectedComponents:    O(H×W×d), Memory: O(H×W)  (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: a Point lies outside the grid.
package gridgraph
