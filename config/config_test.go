package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dahu/config"
	"github.com/katalvlaran/dahu/segment"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "levellines", cfg.Method)
	assert.Equal(t, "none", cfg.Border)
	assert.Equal(t, "inferno", cfg.Colormap)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.PixelView)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFile)
	text := `
method       = "dahu"
border       = "constant"
border_value = 255
pixel_view   = true
log_level    = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dahu", cfg.Method)
	assert.Equal(t, "constant", cfg.Border)
	assert.Equal(t, uint16(255), cfg.BorderValue)
	assert.True(t, cfg.PixelView)
	assert.Equal(t, "debug", cfg.LogLevel)
	// untouched keys keep their defaults
	assert.Equal(t, "inferno", cfg.Colormap)
	assert.Equal(t, ".", cfg.OutputDir)

	req, err := cfg.Request()
	require.NoError(t, err)
	assert.Equal(t, segment.MethodDahu, req.Method)
	assert.Equal(t, segment.BorderConstant, req.Border)
	assert.Equal(t, uint16(255), req.BorderValue)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"unknown key", `methd = "dahu"`, config.ErrUnknownKey},
		{"bad method", `method = "geodesic"`, config.ErrInvalid},
		{"bad border", `border = "mirror"`, config.ErrInvalid},
		{"bad colormap", `colormap = "jet"`, config.ErrInvalid},
		{"bad level", `log_level = "loud"`, config.ErrInvalid},
		{"empty output", `output_dir = " "`, config.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse(tc.text, config.Default())
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Parse(`method = `, config.Default())
	assert.Error(t, err)
}
