// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/dahu/gridgraph"
)

// stop is one keypoint of a colour gradient.
type stop struct {
	c   colorful.Color
	pos float64
}

// Colormap maps values in [0, 1] to colours by linear interpolation
// between evenly spaced keypoints.
type Colormap struct {
	name  string
	stops []stop
}

// inferno keypoints, sampled every 0.1 from matplotlib's colormap.
var infernoHex = []string{
	"#000004", "#160b39", "#420a68", "#6a176e", "#932667", "#bc3754",
	"#dd513a", "#f37819", "#fca50a", "#f6d746", "#fcffa4",
}

var (
	// Inferno is a perceptually uniform dark-to-bright map.
	Inferno = mustColormap("inferno", infernoHex)
	// InfernoReversed is Inferno from bright to dark.
	InfernoReversed = Inferno.Reversed()
	// Gray maps 0 to black and 1 to white.
	Gray = mustColormap("gray", []string{"#000000", "#ffffff"})
)

func mustColormap(name string, hexes []string) Colormap {
	stops := make([]stop, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("render: bad colormap %s: %v", name, err))
		}
		stops[i] = stop{c: c, pos: float64(i) / float64(len(hexes)-1)}
	}
	return Colormap{name: name, stops: stops}
}

// ColormapByName returns "inferno", "inferno_r" or "gray".
func ColormapByName(name string) (Colormap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "inferno":
		return Inferno, nil
	case "inferno_r":
		return InfernoReversed, nil
	case "gray", "grey":
		return Gray, nil
	default:
		return Colormap{}, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
}

// Name returns the colormap name.
func (cm Colormap) Name() string { return cm.name }

// Reversed returns cm with its keypoints in reverse order.
func (cm Colormap) Reversed() Colormap {
	n := len(cm.stops)
	rev := make([]stop, n)
	for i, s := range cm.stops {
		rev[n-1-i] = stop{c: s.c, pos: 1 - s.pos}
	}
	name := cm.name + "_r"
	if strings.HasSuffix(cm.name, "_r") {
		name = strings.TrimSuffix(cm.name, "_r")
	}
	return Colormap{name: name, stops: rev}
}

// At returns the colour for t, clamped to [0, 1]. NaN maps to 0.
func (cm Colormap) At(t float64) color.NRGBA {
	if math.IsNaN(t) || t <= cm.stops[0].pos {
		return toNRGBA(cm.stops[0].c)
	}
	last := cm.stops[len(cm.stops)-1]
	if t >= last.pos {
		return toNRGBA(last.c)
	}
	for i := 0; i < len(cm.stops)-1; i++ {
		a, b := cm.stops[i], cm.stops[i+1]
		if t <= b.pos {
			u := (t - a.pos) / (b.pos - a.pos)
			return toNRGBA(a.c.BlendRgb(b.c, u).Clamped())
		}
	}
	return toNRGBA(last.c)
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Apply colours a grid of values in [0, 1].
func (cm Colormap) Apply(g *gridgraph.Grid[float64]) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i, v := range g.Data {
		c := cm.At(v)
		copy(out.Pix[i*4:i*4+4], []uint8{c.R, c.G, c.B, c.A})
	}
	return out
}

// Heatmap min–max normalises g to [0, 1] and colours it with cm.
func Heatmap[T gridgraph.Number](g *gridgraph.Grid[T], cm Colormap) *image.NRGBA {
	return cm.Apply(normalized(g))
}

// Normalize min–max scales g to an 8-bit grayscale image.
// A flat grid maps to all zeros.
func Normalize[T gridgraph.Number](g *gridgraph.Grid[T]) *image.Gray {
	n := normalized(g)
	out := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for i, v := range n.Data {
		out.Pix[i] = uint8(v * 255)
	}
	return out
}

// normalized returns g scaled to [0, 1]; a flat grid maps to zeros.
func normalized[T gridgraph.Number](g *gridgraph.Grid[T]) *gridgraph.Grid[float64] {
	out := &gridgraph.Grid[float64]{Height: g.Height, Width: g.Width, Data: make([]float64, len(g.Data))}
	if len(g.Data) == 0 {
		return out
	}
	lo, hi := g.Data[0], g.Data[0]
	for _, v := range g.Data {
		lo, hi = min(lo, v), max(hi, v)
	}
	if lo == hi {
		return out
	}
	span := float64(hi) - float64(lo)
	for i, v := range g.Data {
		out.Data[i] = (float64(v) - float64(lo)) / span
	}
	return out
}

// MarkerImage draws the image in grayscale with foreground markers in blue
// and background markers in red. Samples above 255 are scaled down to 8 bits.
// fg or bg may be nil.
func MarkerImage(img *gridgraph.Grid[uint16], fg, bg *gridgraph.Grid[uint8]) *image.NRGBA {
	deep := false
	for _, v := range img.Data {
		if v > 0xff {
			deep = true
			break
		}
	}
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, v := range img.Data {
		if deep {
			v >>= 8
		}
		px := out.Pix[i*4 : i*4+4]
		switch {
		case fg != nil && fg.Data[i] != 0:
			px[0], px[1], px[2] = 0, 0, 0xff
		case bg != nil && bg.Data[i] != 0:
			px[0], px[1], px[2] = 0xff, 0, 0
		default:
			px[0], px[1], px[2] = uint8(v), uint8(v), uint8(v)
		}
		px[3] = 0xff
	}
	return out
}

// Save writes img to path; the format follows the file extension.
func Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
