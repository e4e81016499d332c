package render_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dahu/gridgraph"
	"github.com/katalvlaran/dahu/render"
)

// solid returns a w×h NRGBA image filled with c.
func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestGrayGrid(t *testing.T) {
	img := solid(3, 2, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{A: 255})

	g, err := render.GrayGrid(img)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, []uint16{200, 200, 200, 200, 0, 200}, g.Data)
}

func TestGrayGrid_Gray16KeepsDepth(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 2, 1))
	img.SetGray16(0, 0, color.Gray16{Y: 1000})
	img.SetGray16(1, 0, color.Gray16{Y: 65535})

	g, err := render.GrayGrid(img)
	require.NoError(t, err)
	assert.Equal(t, []uint16{1000, 65535}, g.Data)
}

func TestMaskGrid(t *testing.T) {
	img := solid(2, 2, color.NRGBA{A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{R: 255}) // transparent

	g, err := render.MaskGrid(img)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 1, 0, 0}, g.Data)
}

func TestMarkers(t *testing.T) {
	orig := solid(4, 1, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	painted := solid(4, 1, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	painted.SetNRGBA(0, 0, color.NRGBA{B: 255, A: 255})               // blue
	painted.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 255})               // red
	painted.SetNRGBA(2, 0, color.NRGBA{R: 40, G: 40, B: 200, A: 255}) // bluish

	fg, bg, err := render.Markers(orig, painted)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 0, 1, 0}, fg.Data)
	assert.Equal(t, []uint8{0, 1, 0, 0}, bg.Data)

	_, _, err = render.Markers(orig, solid(3, 1, color.NRGBA{}))
	assert.ErrorIs(t, err, render.ErrSizeMismatch)
}

func TestNormalize(t *testing.T) {
	g := &gridgraph.Grid[uint32]{Height: 1, Width: 3, Data: []uint32{10, 15, 20}}
	img := render.Normalize(g)
	assert.Equal(t, []uint8{0, 127, 255}, img.Pix)

	flat := &gridgraph.Grid[uint32]{Height: 1, Width: 2, Data: []uint32{7, 7}}
	assert.Equal(t, []uint8{0, 0}, render.Normalize(flat).Pix)
}

func TestColormap(t *testing.T) {
	lo := render.Inferno.At(0)
	hi := render.Inferno.At(1)
	assert.Equal(t, color.NRGBA{R: 0x00, G: 0x00, B: 0x04, A: 0xff}, lo)
	assert.Equal(t, color.NRGBA{R: 0xfc, G: 0xff, B: 0xa4, A: 0xff}, hi)

	// out-of-range values clamp
	assert.Equal(t, lo, render.Inferno.At(-3))
	assert.Equal(t, hi, render.Inferno.At(7))

	assert.Equal(t, hi, render.InfernoReversed.At(0))
	assert.Equal(t, lo, render.InfernoReversed.At(1))
	assert.Equal(t, "inferno_r", render.InfernoReversed.Name())
	assert.Equal(t, "inferno", render.InfernoReversed.Reversed().Name())

	mid := render.Gray.At(0.5)
	assert.Equal(t, mid.R, mid.G)
	assert.InDelta(t, 128, int(mid.R), 1)
}

func TestColormapByName(t *testing.T) {
	for _, name := range []string{"", "inferno", "INFERNO", "inferno_r", "gray"} {
		_, err := render.ColormapByName(name)
		assert.NoError(t, err, name)
	}
	_, err := render.ColormapByName("viridis")
	assert.ErrorIs(t, err, render.ErrUnknownColormap)
}

func TestHeatmap(t *testing.T) {
	g := &gridgraph.Grid[uint32]{Height: 1, Width: 2, Data: []uint32{3, 9}}
	img := render.Heatmap(g, render.Gray)
	assert.Equal(t, []uint8{0, 0, 0, 255, 255, 255, 255, 255}, img.Pix)
}

func TestMarkerImage(t *testing.T) {
	img := &gridgraph.Grid[uint16]{Height: 1, Width: 3, Data: []uint16{10, 20, 30}}
	fg := &gridgraph.Grid[uint8]{Height: 1, Width: 3, Data: []uint8{1, 0, 0}}
	bg := &gridgraph.Grid[uint8]{Height: 1, Width: 3, Data: []uint8{0, 0, 1}}

	out := render.MarkerImage(img, fg, bg)
	assert.Equal(t, []uint8{
		0, 0, 255, 255,
		20, 20, 20, 255,
		255, 0, 0, 255,
	}, out.Pix)

	out = render.MarkerImage(img, nil, nil)
	assert.Equal(t, uint8(10), out.Pix[0])
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")

	src := solid(3, 2, color.NRGBA{R: 90, G: 90, B: 90, A: 255})
	src.SetNRGBA(2, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	require.NoError(t, render.Save(path, src))

	g, err := render.LoadGray(path)
	require.NoError(t, err)
	assert.Equal(t, []uint16{90, 90, 90, 90, 90, 255}, g.Data)

	mask, err := render.LoadMask(path)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 1, 1, 1, 1, 1}, mask.Data)

	_, err = render.LoadGray(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
	assert.Error(t, render.Save(filepath.Join(dir, "out.unknown"), src))
}

func TestLoadGray_Gray16FileKeepsDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep.png")
	src := image.NewGray16(image.Rect(0, 0, 3, 1))
	src.SetGray16(0, 0, color.Gray16{Y: 0})
	src.SetGray16(1, 0, color.Gray16{Y: 4097})
	src.SetGray16(2, 0, color.Gray16{Y: 65535})
	require.NoError(t, render.Save(path, src))

	g, err := render.LoadGray(path)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 4097, 65535}, g.Data)
}
