// SPDX-License-Identifier: MIT

// Package config loads the dahu TOML configuration file.
//
// Precedence is flags over file over Default(). Unknown keys are rejected so
// that a misspelled option fails loudly instead of being ignored.
//
// Example dahu.toml:
//
//	method       = "dahu"
//	border       = "median"
//	colormap     = "inferno"
//	output_dir   = "out"
//	pixel_view   = true
//	log_level    = "debug"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/dahu/render"
	"github.com/katalvlaran/dahu/segment"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "dahu.toml"

// Sentinel errors for configuration.
var (
	// ErrUnknownKey indicates a key the Config struct does not define.
	ErrUnknownKey = errors.New("config: unknown key")
	// ErrInvalid indicates a value that fails validation.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds pipeline and output options.
type Config struct {
	// Method is "levellines" or "dahu".
	Method string `toml:"method"`
	// Border is "none", "constant" or "median".
	Border string `toml:"border"`
	// BorderValue is the pad value when Border is "constant".
	BorderValue uint16 `toml:"border_value"`
	// Colormap colours the distance maps; the probability map always uses
	// its reverse.
	Colormap string `toml:"colormap"`
	// OutputDir receives the rendered PNGs.
	OutputDir string `toml:"output_dir"`
	// PixelView saves only the 2-faces, one value per input pixel.
	PixelView bool `toml:"pixel_view"`
	// LogLevel is a charmbracelet/log level name.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Method:    segment.MethodLevelLines.String(),
		Border:    segment.BorderNone.String(),
		Colormap:  render.Inferno.Name(),
		OutputDir: ".",
		LogLevel:  log.InfoLevel.String(),
	}
}

// Load reads path over Default(). A missing file is an error; callers that
// treat the file as optional should check os.IsNotExist themselves.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return Parse(string(data), cfg)
}

// Parse decodes TOML text over base and validates the result.
func Parse(text string, base Config) (Config, error) {
	cfg := base
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate checks every enumerated field.
func (c Config) Validate() error {
	if _, err := segment.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := segment.ParseBorderMode(c.Border); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := render.ColormapByName(c.Colormap); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalid)
	}
	return nil
}

// Request builds a segmentation request skeleton from c. Image and masks
// are left for the caller.
func (c Config) Request() (segment.Request, error) {
	method, err := segment.ParseMethod(c.Method)
	if err != nil {
		return segment.Request{}, err
	}
	b, err := segment.ParseBorderMode(c.Border)
	if err != nil {
		return segment.Request{}, err
	}
	return segment.Request{Method: method, Border: b, BorderValue: c.BorderValue}, nil
}
