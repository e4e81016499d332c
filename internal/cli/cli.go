// SPDX-License-Identifier: MIT

// Package cli implements the dahu command-line interface.
//
// # Commands
//
//   - run: compute foreground/background distance maps and the probability
//     map from an image and marker masks (or a painted copy of the image)
//   - immerse: save the lower and upper bounds of the interval immersion
//   - version: print build information
//
// # Configuration
//
// Options come from flags, then the --config TOML file (dahu.toml in the
// working directory when present), then built-in defaults.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dahu/config"
	"github.com/katalvlaran/dahu/internal/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dahu",
		Short: "Interactive-segmentation distance maps on the tree of shapes",
		Long: `dahu computes the Dahu (minimum barrier) and Level-Lines distance
transforms of a grayscale image from painted foreground and background
markers, and renders the resulting distance and probability maps.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file (default ./"+config.DefaultFile+" if present)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.immerseCommand())
	root.AddCommand(c.versionCommand())
	return root
}

// Execute runs the root command with ctx.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// setup loads the config file, sets the log level and attaches the logger
// to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if err := c.loadConfig(); err != nil {
		return err
	}
	level, err := log.ParseLevel(c.Config.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: log_level %q", config.ErrInvalid, c.Config.LogLevel)
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

func (c *CLI) loadConfig() error {
	path, explicit := c.configPath, true
	if path == "" {
		path, explicit = config.DefaultFile, false
	}
	cfg, err := config.Load(path)
	switch {
	case err == nil:
		c.Config = cfg
		c.Logger.Debug("loaded config", "path", path)
		return nil
	case !explicit && errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("load config %s: %w", path, err)
	}
}
