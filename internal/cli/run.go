// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dahu/config"
	"github.com/katalvlaran/dahu/gridgraph"
	"github.com/katalvlaran/dahu/immersion"
	"github.com/katalvlaran/dahu/render"
	"github.com/katalvlaran/dahu/segment"
)

// Output file names written by the run command.
const (
	fileForeground  = "fg.png"
	fileBackground  = "bg.png"
	fileProbability = "probability.png"
	fileMarkers     = "markers.png"
)

// errNoMarkers is returned when neither masks nor a painted image are given.
var errNoMarkers = errors.New("provide --fg and/or --bg masks, or --painted")

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	fg      string // foreground mask path
	bg      string // background mask path
	painted string // painted copy of the input; blue strokes are fg, red are bg
}

func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts
	cmd := &cobra.Command{
		Use:   "run IMAGE",
		Short: "Compute distance and probability maps from markers",
		Long: `Compute the distance of every pixel to the foreground and background
markers and the foreground probability Dfg / (Dfg + Dbg).

Markers come either from binary mask images (--fg, --bg) or from a painted
copy of IMAGE (--painted), where pixels changed to bluish colours are
foreground and reddish ones are background.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.applyFlags(cmd); err != nil {
				return err
			}
			return c.runSegment(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.fg, "fg", "", "foreground marker mask")
	cmd.Flags().StringVar(&opts.bg, "bg", "", "background marker mask")
	cmd.Flags().StringVar(&opts.painted, "painted", "", "painted copy of IMAGE")
	cmd.MarkFlagsMutuallyExclusive("painted", "fg")
	cmd.MarkFlagsMutuallyExclusive("painted", "bg")
	addPipelineFlags(cmd)
	return cmd
}

// addPipelineFlags registers flags that override config.Config fields.
func addPipelineFlags(cmd *cobra.Command) {
	def := config.Default()
	cmd.Flags().StringP("method", "m", def.Method, "distance: levellines or dahu")
	cmd.Flags().String("border", def.Border, "border mode: none, constant or median")
	cmd.Flags().Uint16("border-value", def.BorderValue, "pad value for --border constant")
	cmd.Flags().String("colormap", def.Colormap, "colormap: inferno, inferno_r or gray")
	cmd.Flags().StringP("output", "o", def.OutputDir, "output directory")
	cmd.Flags().Bool("pixel-view", def.PixelView, "save one value per input pixel instead of the immersed grid")
}

// applyFlags copies explicitly set flags over the loaded config.
func (c *CLI) applyFlags(cmd *cobra.Command) error {
	f := cmd.Flags()
	var err error
	if f.Changed("method") {
		c.Config.Method, err = f.GetString("method")
	}
	if err == nil && f.Changed("border") {
		c.Config.Border, err = f.GetString("border")
	}
	if err == nil && f.Changed("border-value") {
		c.Config.BorderValue, err = f.GetUint16("border-value")
	}
	if err == nil && f.Changed("colormap") {
		c.Config.Colormap, err = f.GetString("colormap")
	}
	if err == nil && f.Changed("output") {
		c.Config.OutputDir, err = f.GetString("output")
	}
	if err == nil && f.Changed("pixel-view") {
		c.Config.PixelView, err = f.GetBool("pixel-view")
	}
	if err != nil {
		return err
	}
	return c.Config.Validate()
}

func (c *CLI) runSegment(cmd *cobra.Command, imagePath string, opts runOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger,
		"image", imagePath,
		"method", c.Config.Method,
		"border", c.Config.Border,
		"output", c.Config.OutputDir)

	req, err := c.Config.Request()
	if err != nil {
		return err
	}
	if req.Image, err = render.LoadGray(imagePath); err != nil {
		return err
	}
	if req.Foreground, req.Background, err = loadMarkers(imagePath, opts); err != nil {
		return err
	}
	logger.Debug("loaded input",
		"image", imagePath,
		"height", req.Image.Height,
		"width", req.Image.Width)

	res, err := segment.NewRunner(logger).Run(ctx, req)
	if err != nil {
		return err
	}

	cmap, err := render.ColormapByName(c.Config.Colormap)
	if err != nil {
		return err
	}
	out := c.Config.OutputDir
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var saved int
	save := func(name string, img image.Image) error {
		path := filepath.Join(out, name)
		if err := render.Save(path, img); err != nil {
			return err
		}
		logger.Debug("saved", "path", path)
		saved++
		return nil
	}
	if res.Foreground != nil {
		if err := saveHeatmap(c, save, fileForeground, res.Foreground, cmap); err != nil {
			return err
		}
	}
	if res.Background != nil {
		if err := saveHeatmap(c, save, fileBackground, res.Background, cmap); err != nil {
			return err
		}
	}
	if res.Probability != nil {
		if err := saveHeatmap(c, save, fileProbability, res.Probability, cmap.Reversed()); err != nil {
			return err
		}
	}
	if err := save(fileMarkers, render.MarkerImage(req.Image, req.Foreground, req.Background)); err != nil {
		return err
	}

	prog.done("saved results",
		"images", saved,
		"pixel_view", c.Config.PixelView,
		"fg_seeds", res.Stats.ForegroundSeeds,
		"bg_seeds", res.Stats.BackgroundSeeds)
	return nil
}

// saveHeatmap renders g with cmap, reduced to the pixel view if configured.
func saveHeatmap[T gridgraph.Number](c *CLI, save func(string, image.Image) error, name string, g *gridgraph.Grid[T], cmap render.Colormap) error {
	if c.Config.PixelView {
		var err error
		if g, err = immersion.TwoFaces(g); err != nil {
			return err
		}
	}
	return save(name, render.Heatmap(g, cmap))
}

// loadMarkers reads the fg/bg masks, or derives them from a painted image.
func loadMarkers(imagePath string, opts runOpts) (fg, bg *gridgraph.Grid[uint8], err error) {
	if opts.painted != "" {
		orig, err := render.LoadImage(imagePath)
		if err != nil {
			return nil, nil, err
		}
		painted, err := render.LoadImage(opts.painted)
		if err != nil {
			return nil, nil, err
		}
		return render.Markers(orig, painted)
	}
	if opts.fg == "" && opts.bg == "" {
		return nil, nil, errNoMarkers
	}
	if opts.fg != "" {
		if fg, err = render.LoadMask(opts.fg); err != nil {
			return nil, nil, err
		}
	}
	if opts.bg != "" {
		if bg, err = render.LoadMask(opts.bg); err != nil {
			return nil, nil, err
		}
	}
	return fg, bg, nil
}
