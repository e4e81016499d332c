// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dahu/immersion"
	"github.com/katalvlaran/dahu/render"
)

func (c *CLI) immerseCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "immerse IMAGE",
		Short: "Save the lower and upper bounds of the immersed image",
		Long: `Immerse IMAGE into the doubled (2H-1)x(2W-1) grid and save its lower
bound m and upper bound M, min-max normalised, as m.png and M.png.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger, "image", args[0], "output", output)

			img, err := render.LoadGray(args[0])
			if err != nil {
				return err
			}
			m, M, err := immersion.Immerse(img)
			if err != nil {
				return err
			}
			logger.Debug("immersed image", "height", m.Height, "width", m.Width)

			if err := os.MkdirAll(output, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			if err := render.Save(filepath.Join(output, "m.png"), render.Normalize(m)); err != nil {
				return err
			}
			if err := render.Save(filepath.Join(output, "M.png"), render.Normalize(M)); err != nil {
				return err
			}
			prog.done("saved immersion",
				"height", img.Height,
				"width", img.Width,
				"immersed", fmt.Sprintf("%dx%d", m.Height, m.Width))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", ".", "output directory")
	return cmd
}
