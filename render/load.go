// SPDX-License-Identifier: MIT

// Package render adapts between image files and the grids used by the
// distance transforms: loading grayscale images and marker masks, extracting
// markers from painted copies of an image, and turning distance maps into
// viewable PNGs.
package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoding for Open

	"github.com/katalvlaran/dahu/gridgraph"
)

// Sentinel errors for image adapters.
var (
	// ErrSizeMismatch indicates two images that must align differ in size.
	ErrSizeMismatch = errors.New("render: image sizes differ")
	// ErrUnknownColormap indicates an unsupported colormap name.
	ErrUnknownColormap = errors.New("render: unknown colormap")
)

// LoadGray opens an image file and returns its luminance as a grid.
// 16-bit grayscale files keep their full depth; anything else is converted
// to 8-bit luminance.
//
// EXIF orientation is applied, which only ever rotates JPEG streams; JPEG is
// 8-bit, so 16-bit sources (PNG, TIFF) are never re-encoded by it.
func LoadGray(path string) (*gridgraph.Grid[uint16], error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return GrayGrid(img)
}

// LoadMask opens an image file and returns a 0/1 mask of its non-black pixels.
func LoadMask(path string) (*gridgraph.Grid[uint8], error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return MaskGrid(img)
}

// LoadImage opens an image file as 8-bit NRGBA.
func LoadImage(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// GrayGrid converts img to a luminance grid.
func GrayGrid(img image.Image) (*gridgraph.Grid[uint16], error) {
	if g16, ok := img.(*image.Gray16); ok {
		b := g16.Bounds()
		out, err := gridgraph.New[uint16](b.Dy(), b.Dx())
		if err != nil {
			return nil, err
		}
		for y := 0; y < out.Height; y++ {
			for x := 0; x < out.Width; x++ {
				out.Data[y*out.Width+x] = g16.Gray16At(b.Min.X+x, b.Min.Y+y).Y
			}
		}
		return out, nil
	}

	gray := imaging.Grayscale(img)
	b := gray.Bounds()
	out, err := gridgraph.New[uint16](b.Dy(), b.Dx())
	if err != nil {
		return nil, err
	}
	for i := range out.Data {
		out.Data[i] = uint16(gray.Pix[i*4])
	}
	return out, nil
}

// MaskGrid marks with 1 every pixel of img with a non-zero colour channel
// and non-zero alpha.
func MaskGrid(img image.Image) (*gridgraph.Grid[uint8], error) {
	src := imaging.Clone(img)
	b := src.Bounds()
	out, err := gridgraph.New[uint8](b.Dy(), b.Dx())
	if err != nil {
		return nil, err
	}
	for i := range out.Data {
		px := src.Pix[i*4 : i*4+4]
		if px[3] != 0 && (px[0] != 0 || px[1] != 0 || px[2] != 0) {
			out.Data[i] = 1
		}
	}
	return out, nil
}

// Markers compares a painted copy of an image with the original.
// Every changed pixel becomes a marker: foreground when its colour is at
// least as close to pure blue as to pure red, background otherwise.
func Markers(original, painted image.Image) (fg, bg *gridgraph.Grid[uint8], err error) {
	a, b := imaging.Clone(original), imaging.Clone(painted)
	if a.Bounds().Size() != b.Bounds().Size() {
		return nil, nil, fmt.Errorf("%w: %v vs %v", ErrSizeMismatch, a.Bounds().Size(), b.Bounds().Size())
	}
	h, w := a.Bounds().Dy(), a.Bounds().Dx()
	if fg, err = gridgraph.New[uint8](h, w); err != nil {
		return nil, nil, err
	}
	if bg, err = gridgraph.New[uint8](h, w); err != nil {
		return nil, nil, err
	}
	for i := range fg.Data {
		pa, pb := a.Pix[i*4:i*4+3], b.Pix[i*4:i*4+3]
		if pa[0] == pb[0] && pa[1] == pb[1] && pa[2] == pb[2] {
			continue
		}
		r, g, bl := int(pb[0]), int(pb[1]), int(pb[2])
		dBlue := r*r + g*g + (bl-255)*(bl-255)
		dRed := (r-255)*(r-255) + g*g + bl*bl
		if dBlue <= dRed {
			fg.Data[i] = 1
		} else {
			bg.Data[i] = 1
		}
	}
	return fg, bg, nil
}
