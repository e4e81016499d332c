// SPDX-License-Identifier: MIT

// Package gridgraph defines the raster, point and face types shared by the
// immersion, queue and distance packages of github.com/katalvlaran/dahu.
package gridgraph

import "fmt"

// Sample is the set of pixel depths accepted as image input (8 or 16 bits).
type Sample interface {
	~uint8 | ~uint16
}

// Number is any element type a Grid may hold.
type Number interface {
	~uint8 | ~uint16 | ~uint32 | ~int32 | ~int | ~float64
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: W, S, E, N.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity.
	Conn8
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Point addresses a cell by row and column.
type Point struct {
	Row, Col int
}

// String implements fmt.Stringer as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p shifted by the (dRow, dCol) offset d.
func (p Point) Add(d [2]int) Point {
	return Point{Row: p.Row + d[0], Col: p.Col + d[1]}
}

// Face is the topological kind of a cell on a doubled grid.
type Face int

const (
	// Face0 is a vertex: both coordinates odd.
	Face0 Face = iota
	// Face1 is an edge between two pixels: exactly one coordinate odd.
	Face1
	// Face2 is an original pixel: both coordinates even.
	Face2
)

// String implements fmt.Stringer.
func (f Face) String() string {
	switch f {
	case Face0:
		return "0-face"
	case Face1:
		return "1-face"
	case Face2:
		return "2-face"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// FaceOf classifies p by coordinate parity.
func FaceOf(p Point) Face {
	odd := p.Row&1 + p.Col&1
	return Face(2 - odd)
}

// IsTwoFace reports whether p corresponds to an original pixel.
func IsTwoFace(p Point) bool {
	return p.Row&1 == 0 && p.Col&1 == 0
}

// Grid is a dense H×W raster stored row-major.
// The zero value is not usable; build grids with New or FromRows.
type Grid[T Number] struct {
	Height, Width int
	Data          []T
}

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)
