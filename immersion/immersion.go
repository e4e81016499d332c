// SPDX-License-Identifier: MIT

package immersion

import (
	"github.com/katalvlaran/dahu/gridgraph"
)

// Shape returns the immersed dimensions (2h−1, 2w−1) of an h×w image.
func Shape(h, w int) (int, int) {
	return 2*h - 1, 2*w - 1
}

// Immerse builds the lower (m) and upper (M) interval grids of img.
//
// Every immersed cell (r, c) covers the pixels at rows {⌊r/2⌋, ⌈r/2⌉} and
// columns {⌊c/2⌋, ⌈c/2⌉}: one pixel for a 2-face, two for a 1-face, four for a
// 0-face. m and M are the minimum and maximum of those pixels.
//
// Invariants on return: m ≤ M pointwise; m = M = img on every 2-face.
// img is not modified.
func Immerse[T gridgraph.Sample](img *gridgraph.Grid[T]) (m, M *gridgraph.Grid[T], err error) {
	if img == nil || img.Height <= 0 || img.Width <= 0 {
		return nil, nil, gridgraph.ErrEmptyGrid
	}
	h, w := Shape(img.Height, img.Width)
	if m, err = gridgraph.New[T](h, w); err != nil {
		return nil, nil, err
	}
	if M, err = gridgraph.New[T](h, w); err != nil {
		return nil, nil, err
	}

	src := img.Data
	sw := img.Width
	i := 0
	for r := 0; r < h; r++ {
		r0, r1 := r/2, (r+1)/2
		for c := 0; c < w; c++ {
			c0, c1 := c/2, (c+1)/2
			a := src[r0*sw+c0]
			b := src[r0*sw+c1]
			x := src[r1*sw+c0]
			y := src[r1*sw+c1]
			m.Data[i] = min(a, b, x, y)
			M.Data[i] = max(a, b, x, y)
			i++
		}
	}
	return m, M, nil
}

// SeedsFromMask immerses a pixel mask and returns, in row-major order, every
// 2-face of the immersed grid where the mask is non-zero.
// An all-zero mask yields an empty, non-nil slice.
func SeedsFromMask[T gridgraph.Sample](mask *gridgraph.Grid[T]) ([]gridgraph.Point, error) {
	_, K, err := Immerse(mask)
	if err != nil {
		return nil, err
	}
	seeds := make([]gridgraph.Point, 0)
	for r := 0; r < K.Height; r += 2 {
		for c := 0; c < K.Width; c += 2 {
			p := gridgraph.Point{Row: r, Col: c}
			if K.At(p) != 0 {
				seeds = append(seeds, p)
			}
		}
	}
	return seeds, nil
}

// PixelSeeds maps pixel coordinates of the original image onto their 2-faces
// on the immersed grid.
func PixelSeeds(pixels ...gridgraph.Point) []gridgraph.Point {
	out := make([]gridgraph.Point, len(pixels))
	for i, p := range pixels {
		out[i] = gridgraph.Point{Row: 2 * p.Row, Col: 2 * p.Col}
	}
	return out
}

// TwoFaces extracts the 2-faces of an immersed grid, returning the H×W
// pixel view. It is the inverse of the 2-face placement done by Immerse.
func TwoFaces[T gridgraph.Number](g *gridgraph.Grid[T]) (*gridgraph.Grid[T], error) {
	if g == nil || g.Height <= 0 || g.Width <= 0 {
		return nil, gridgraph.ErrEmptyGrid
	}
	out, err := gridgraph.New[T]((g.Height+1)/2, (g.Width+1)/2)
	if err != nil {
		return nil, err
	}
	i := 0
	for r := 0; r < g.Height; r += 2 {
		for c := 0; c < g.Width; c += 2 {
			out.Data[i] = g.Data[r*g.Width+c]
			i++
		}
	}
	return out, nil
}
