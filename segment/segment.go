// SPDX-License-Identifier: MIT

package segment

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/dahu/border"
	"github.com/katalvlaran/dahu/distance"
	"github.com/katalvlaran/dahu/gridgraph"
	"github.com/katalvlaran/dahu/immersion"
)

// Runner executes segmentation requests. It holds no per-request state, so
// one Runner may serve concurrent calls.
type Runner struct {
	Logger *log.Logger
}

// NewRunner returns a Runner logging to logger, or to log.Default() if nil.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run computes the distance maps for req.
//
// The context is checked before each transform; a transform itself runs to
// completion once started.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	if err := validate(req); err != nil {
		return nil, err
	}

	img, fg, bg, ring, err := pad(req)
	if err != nil {
		return nil, err
	}
	m, M, err := immersion.Immerse(img)
	if err != nil {
		return nil, fmt.Errorf("immerse image: %w", err)
	}
	r.Logger.Debug("immersed image",
		"height", m.Height,
		"width", m.Width,
		"border", req.Border)

	res := &Result{}
	if res.Foreground, res.Stats.ForegroundSeeds, res.Stats.ForegroundStrokes, err =
		r.label(ctx, "foreground", req.Method, m, M, fg, ring); err != nil {
		return nil, err
	}
	if res.Background, res.Stats.BackgroundSeeds, res.Stats.BackgroundStrokes, err =
		r.label(ctx, "background", req.Method, m, M, bg, ring); err != nil {
		return nil, err
	}
	if res.Foreground == nil && res.Background == nil {
		return nil, ErrNoSeeds
	}
	if res.Foreground != nil && res.Background != nil {
		res.Probability = Probability(res.Foreground, res.Background)
	}

	res.Stats.Elapsed = time.Since(start)
	r.Logger.Info("segmentation done",
		"method", req.Method,
		"fg_seeds", res.Stats.ForegroundSeeds,
		"bg_seeds", res.Stats.BackgroundSeeds,
		"duration", res.Stats.Elapsed.Round(time.Millisecond))
	return res, nil
}

// label runs the transform for one marker mask. A nil or empty mask yields a
// nil map and no error.
func (r *Runner) label(ctx context.Context, name string, method Method,
	m, M *gridgraph.Grid[uint16], mask *gridgraph.Grid[uint8], ring int,
) (*gridgraph.Grid[uint32], int, int, error) {
	if mask == nil {
		return nil, 0, 0, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, 0, err
	}
	seeds, err := immersion.SeedsFromMask(mask)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%s seeds: %w", name, err)
	}
	strokes := len(gridgraph.ConnectedComponents(mask, gridgraph.Conn8))
	if len(seeds) == 0 {
		r.Logger.Debug("empty marker mask", "label", name)
		return nil, 0, 0, nil
	}

	var (
		st   distance.Stats
		dist *gridgraph.Grid[uint32]
	)
	t0 := time.Now()
	switch method {
	case MethodLevelLines:
		_, dist, err = distance.LevelLines(m, M, seeds, distance.WithStats(&st))
	case MethodDahu:
		var d *gridgraph.Grid[uint16]
		d, err = distance.Dahu(m, M, seeds, distance.WithStats(&st))
		if err == nil {
			dist = gridgraph.Convert[uint32](d)
		}
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%s %v: %w", name, method, err)
	}
	r.Logger.Debug("computed distance",
		"label", name,
		"seeds", len(seeds),
		"strokes", strokes,
		"visited", st.Visited,
		"max_level", st.MaxLevel,
		"duration", time.Since(t0).Round(time.Millisecond))

	if ring > 0 {
		// one pixel of border is two immersed elements
		if dist, err = border.Crop(dist, 2*ring); err != nil {
			return nil, 0, 0, fmt.Errorf("%s crop: %w", name, err)
		}
	}
	return dist, len(seeds), strokes, nil
}

// validate checks the request before any allocation.
func validate(req Request) error {
	if req.Image == nil || req.Image.Height <= 0 || req.Image.Width <= 0 {
		return gridgraph.ErrEmptyGrid
	}
	if req.Foreground == nil && req.Background == nil {
		return ErrNoSeeds
	}
	for _, mk := range []*gridgraph.Grid[uint8]{req.Foreground, req.Background} {
		if mk != nil && !mk.SameShape(req.Image.Height, req.Image.Width) {
			return fmt.Errorf("%w: mask %dx%d, image %dx%d",
				ErrMaskShape, mk.Height, mk.Width, req.Image.Height, req.Image.Width)
		}
	}
	switch req.Method {
	case MethodLevelLines, MethodDahu:
	default:
		return fmt.Errorf("%w: %v", ErrUnknownMethod, req.Method)
	}
	return nil
}

// pad applies the requested border to the image and a zero ring to masks.
// It returns the ring width in pixels.
func pad(req Request) (*gridgraph.Grid[uint16], *gridgraph.Grid[uint8], *gridgraph.Grid[uint8], int, error) {
	var (
		img *gridgraph.Grid[uint16]
		err error
	)
	switch req.Border {
	case BorderNone:
		return req.Image, req.Foreground, req.Background, 0, nil
	case BorderConstant:
		img, err = border.AddBorder(req.Image, req.BorderValue)
	case BorderMedian:
		img, err = border.AddMedianBorder(req.Image)
	default:
		return nil, nil, nil, 0, fmt.Errorf("%w: %v", ErrUnknownBorder, req.Border)
	}
	if err != nil {
		return nil, nil, nil, 0, err
	}
	masks := [2]*gridgraph.Grid[uint8]{req.Foreground, req.Background}
	for i, mk := range masks {
		if mk == nil {
			continue
		}
		if masks[i], err = border.AddBorder(mk, 0); err != nil {
			return nil, nil, nil, 0, err
		}
	}
	return img, masks[0], masks[1], 1, nil
}

// Probability returns fg / (fg + bg) elementwise, 0 where both are 0.
// Both grids must share a shape.
func Probability(fg, bg *gridgraph.Grid[uint32]) *gridgraph.Grid[float64] {
	out := &gridgraph.Grid[float64]{Height: fg.Height, Width: fg.Width, Data: make([]float64, len(fg.Data))}
	for i := range fg.Data {
		a, b := float64(fg.Data[i]), float64(bg.Data[i])
		if s := a + b; s > 0 {
			out.Data[i] = a / s
		}
	}
	return out
}
