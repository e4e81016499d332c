// SPDX-License-Identifier: MIT

package gridgraph

// New allocates a zero-filled h×w grid.
// Returns ErrEmptyGrid if h or w is not positive.
// Complexity: O(h×w) time and memory.
func New[T Number](h, w int) (*Grid[T], error) {
	if h <= 0 || w <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid[T]{Height: h, Width: w, Data: make([]T, h*w)}, nil
}

// Filled allocates an h×w grid with every cell set to v.
func Filled[T Number](h, w int, v T) (*Grid[T], error) {
	g, err := New[T](h, w)
	if err != nil {
		return nil, err
	}
	g.Fill(v)
	return g, nil
}

// FromRows builds a grid from a non-empty, rectangular 2D slice.
// It deep-copies the input, so later changes to rows are not observed.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromRows[T Number](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid[T]{Height: h, Width: w, Data: make([]T, h*w)}
	for r, row := range rows {
		copy(g.Data[r*w:(r+1)*w], row)
	}
	return g, nil
}

// Rows returns a deep copy of the grid as a 2D slice.
func (g *Grid[T]) Rows() [][]T {
	out := make([][]T, g.Height)
	for r := range out {
		out[r] = make([]T, g.Width)
		copy(out[r], g.Data[r*g.Width:(r+1)*g.Width])
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.Data))
	copy(data, g.Data)
	return &Grid[T]{Height: g.Height, Width: g.Width, Data: data}
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.Data {
		g.Data[i] = v
	}
}

// SameShape reports whether g is h×w.
func (g *Grid[T]) SameShape(h, w int) bool {
	return g.Height == h && g.Width == w
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// Index maps p to its row-major offset: Row*Width + Col.
// The caller must ensure p is in bounds.
func (g *Grid[T]) Index(p Point) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{Row: idx / g.Width, Col: idx % g.Width}
}

// At returns the value at p. It panics if p is out of bounds, like a slice index.
func (g *Grid[T]) At(p Point) T {
	return g.Data[g.Index(p)]
}

// Set stores v at p. It panics if p is out of bounds, like a slice index.
func (g *Grid[T]) Set(p Point, v T) {
	g.Data[g.Index(p)] = v
}

// Get returns the value at p, or ErrOutOfRange.
func (g *Grid[T]) Get(p Point) (T, error) {
	if !g.InBounds(p) {
		var zero T
		return zero, ErrOutOfRange
	}
	return g.Data[g.Index(p)], nil
}

// NeighborOffsets returns the (dRow, dCol) offsets for the given connectivity.
// The slice is shared and must not be modified.
func NeighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// Convert copies src into a new grid of element type U.
// Values are converted with a plain Go conversion.
func Convert[U, T Number](src *Grid[T]) *Grid[U] {
	out := &Grid[U]{Height: src.Height, Width: src.Width, Data: make([]U, len(src.Data))}
	for i, v := range src.Data {
		out.Data[i] = U(v)
	}
	return out
}
