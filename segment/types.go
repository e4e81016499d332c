// SPDX-License-Identifier: MIT

// Package segment turns an image and two painted marker masks into
// foreground and background distance maps and a probability map.
//
// Pipeline:
//
//  1. Optionally pad the image with a border (constant or median) and the
//     masks with a zero ring.
//  2. Immerse the image into (m, M).
//  3. Immerse each mask and keep its non-zero 2-faces as seeds.
//  4. Run the chosen transform once per non-empty mask.
//  5. Crop the border back off and derive P = Dfg / (Dfg + Dbg).
//
// Every output grid has the immersed shape of the input image.
package segment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/dahu/gridgraph"
)

// Sentinel errors for pipeline requests.
var (
	// ErrMaskShape indicates a marker mask whose shape differs from the image.
	ErrMaskShape = errors.New("segment: mask shape differs from image")
	// ErrNoSeeds indicates both masks are absent or empty.
	ErrNoSeeds = errors.New("segment: no foreground or background seeds")
	// ErrUnknownMethod indicates an unsupported transform name.
	ErrUnknownMethod = errors.New("segment: unknown method")
	// ErrUnknownBorder indicates an unsupported border mode name.
	ErrUnknownBorder = errors.New("segment: unknown border mode")
)

// Method selects the distance transform.
type Method int

const (
	// MethodLevelLines accumulates level-line crossings (default).
	MethodLevelLines Method = iota
	// MethodDahu measures the minimum barrier (max − min along the path).
	MethodDahu
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodLevelLines:
		return "levellines"
	case MethodDahu:
		return "dahu"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "levellines" (or "lldt") and "dahu" to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "levellines", "level-lines", "lldt":
		return MethodLevelLines, nil
	case "dahu", "mbd":
		return MethodDahu, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// BorderMode selects the pre-processing ring added around the image.
type BorderMode int

const (
	// BorderNone leaves the image as is.
	BorderNone BorderMode = iota
	// BorderConstant pads with Request.BorderValue.
	BorderConstant
	// BorderMedian pads with the median of the image border.
	BorderMedian
)

// String implements fmt.Stringer.
func (b BorderMode) String() string {
	switch b {
	case BorderNone:
		return "none"
	case BorderConstant:
		return "constant"
	case BorderMedian:
		return "median"
	default:
		return fmt.Sprintf("BorderMode(%d)", int(b))
	}
}

// ParseBorderMode maps "none", "constant" and "median" to a BorderMode.
func ParseBorderMode(s string) (BorderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BorderNone, nil
	case "constant":
		return BorderConstant, nil
	case "median":
		return BorderMedian, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBorder, s)
	}
}

// Request is one segmentation query. Foreground or Background may be nil,
// but not both. Non-zero mask pixels are markers.
type Request struct {
	Image       *gridgraph.Grid[uint16]
	Foreground  *gridgraph.Grid[uint8]
	Background  *gridgraph.Grid[uint8]
	Method      Method
	Border      BorderMode
	BorderValue uint16
}

// Result holds the per-label distance maps on the immersed grid of
// Request.Image. A map is nil when its mask was nil or empty; Probability is
// nil unless both maps exist.
type Result struct {
	Foreground  *gridgraph.Grid[uint32]
	Background  *gridgraph.Grid[uint32]
	Probability *gridgraph.Grid[float64]
	Stats       Stats
}

// Stats summarises one Run.
type Stats struct {
	ForegroundSeeds   int
	BackgroundSeeds   int
	ForegroundStrokes int
	BackgroundStrokes int
	Elapsed           time.Duration
}
