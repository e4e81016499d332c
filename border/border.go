// SPDX-License-Identifier: MIT

// Package border pads and crops rasters by a constant ring.
//
// A one-pixel border around the image gives every distance transform a
// closed outer contour to propagate along; AddMedianBorder picks a value that
// is typical of the image edge so the border adds as few level lines as
// possible.
package border

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/dahu/gridgraph"
)

// ErrCropTooLarge indicates a crop ring that would leave no pixel.
var ErrCropTooLarge = errors.New("border: crop ring larger than image")

// AddBorder returns a copy of img enlarged by one pixel on every side, the
// new ring set to v. The result is (H+2)×(W+2).
func AddBorder[T gridgraph.Number](img *gridgraph.Grid[T], v T) (*gridgraph.Grid[T], error) {
	if img == nil || img.Height <= 0 || img.Width <= 0 {
		return nil, gridgraph.ErrEmptyGrid
	}
	out, err := gridgraph.Filled(img.Height+2, img.Width+2, v)
	if err != nil {
		return nil, err
	}
	for r := 0; r < img.Height; r++ {
		dst := out.Data[(r+1)*out.Width+1 : (r+1)*out.Width+1+img.Width]
		copy(dst, img.Data[r*img.Width:(r+1)*img.Width])
	}
	return out, nil
}

// AddMedianBorder is AddBorder with v = MedianBorderValue(img).
func AddMedianBorder[T gridgraph.Number](img *gridgraph.Grid[T]) (*gridgraph.Grid[T], error) {
	v, err := MedianBorderValue(img)
	if err != nil {
		return nil, err
	}
	return AddBorder(img, v)
}

// MedianBorderValue returns the median of the border pixels of img, taken
// as the concatenation of the top row, bottom row, left column and right
// column (corners appear twice). For an even count the upper median is used.
func MedianBorderValue[T gridgraph.Number](img *gridgraph.Grid[T]) (T, error) {
	var zero T
	if img == nil || img.Height <= 0 || img.Width <= 0 {
		return zero, gridgraph.ErrEmptyGrid
	}
	h, w := img.Height, img.Width
	vals := make([]T, 0, 2*w+2*h)
	vals = append(vals, img.Data[:w]...)
	vals = append(vals, img.Data[(h-1)*w:]...)
	for r := 0; r < h; r++ {
		vals = append(vals, img.Data[r*w])
	}
	for r := 0; r < h; r++ {
		vals = append(vals, img.Data[r*w+w-1])
	}
	slices.Sort(vals)
	return vals[len(vals)/2], nil
}

// Crop removes an n-pixel ring from every side of img.
// Crop(AddBorder(img, v), 1) reproduces img.
func Crop[T gridgraph.Number](img *gridgraph.Grid[T], n int) (*gridgraph.Grid[T], error) {
	if img == nil || img.Height <= 0 || img.Width <= 0 {
		return nil, gridgraph.ErrEmptyGrid
	}
	if n < 0 || 2*n >= img.Height || 2*n >= img.Width {
		return nil, fmt.Errorf("%w: ring %d on %dx%d", ErrCropTooLarge, n, img.Height, img.Width)
	}
	out, err := gridgraph.New[T](img.Height-2*n, img.Width-2*n)
	if err != nil {
		return nil, err
	}
	for r := 0; r < out.Height; r++ {
		src := img.Data[(r+n)*img.Width+n : (r+n)*img.Width+n+out.Width]
		copy(out.Data[r*out.Width:(r+1)*out.Width], src)
	}
	return out, nil
}
