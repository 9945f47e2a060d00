package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tabpager/internal/config"
	"tabpager/internal/errors"
	"tabpager/internal/titlestrip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

const (
	validYAML = `
style: cover
layout: fixed
title_spacing: 8
selected_font:
  size: 17
  bold: true
colors:
  title_selected: "#ff8000"
cover:
  color: "#00000080"
  radius: false
pages:
  titles: [Inbox, Sent, Drafts]
  initial_index: 2
`
	invalidSyntaxYAML = `
style: cover
pages:
  titles: [Inbox, "Sent
`
	invalidStyleYAML = `
style: sparkle
`
	invalidScaleYAML = `
scale: 0.5
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, validYAML))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "cover", cfg.Style)
		assert.Equal(t, "fixed", cfg.Layout)
		assert.Equal(t, 8.0, cfg.TitleSpacing)
		assert.Equal(t, config.Font{Size: 17, Bold: true}, cfg.SelectedFont)
		assert.Equal(t, []string{"Inbox", "Sent", "Drafts"}, cfg.Pages.Titles)
		assert.Equal(t, 2, cfg.Pages.InitialIndex)
		assert.False(t, cfg.Cover.Radius)

		// Unset keys keep their defaults
		assert.Equal(t, config.Font{Size: 15}, cfg.Font)
		assert.Equal(t, "black", cfg.Colors.Title)
		assert.True(t, cfg.Underline.Radius)
		assert.Equal(t, 60, cfg.Terminal.FPS)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("invalid syntax", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidSyntaxYAML))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
	})

	t.Run("invalid style", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidStyleYAML))
		require.Error(t, err)
		var cfgErr *errors.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "style", cfgErr.Param())
	})

	t.Run("invalid scale", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidScaleYAML))
		var cfgErr *errors.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "scale", cfgErr.Param())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		param  string
	}{
		{"layout", func(c *config.Config) { c.Layout = "grid" }, "layout"},
		{"negative spacing", func(c *config.Config) { c.TitleSpacing = -1 }, "title_spacing"},
		{"zero font", func(c *config.Config) { c.Font.Size = 0 }, "font.size"},
		{"bad color", func(c *config.Config) { c.Underline.Color = "#12" }, "underline.color"},
		{"empty color", func(c *config.Config) { c.Colors.ViewBack = "" }, "colors.view_back"},
		{"index past titles", func(c *config.Config) { c.Pages.InitialIndex = 5 }, "pages.initial_index"},
		{"negative cover margin", func(c *config.Config) { c.Cover.Margin = -2 }, "cover.margin"},
		{"fps", func(c *config.Config) { c.Terminal.FPS = 0 }, "terminal.fps"},
		{"cell width", func(c *config.Config) { c.Terminal.CellWidth = 0 }, "terminal.cell_width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidConfig(err))
			var cfgErr *errors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.param, cfgErr.Param())
		})
	}

	assert.NoError(t, config.New().Validate())
	var nilCfg *config.Config
	assert.Error(t, nilCfg.Validate())
}

func TestDefaultAttributesMatchStrip(t *testing.T) {
	a, err := config.New().Attributes()
	require.NoError(t, err)

	want := titlestrip.DefaultAttributes()
	assert.Equal(t, want.Style, a.Style)
	assert.Equal(t, want.Layout, a.Layout)
	assert.Equal(t, want.TitleSpacing, a.TitleSpacing)
	assert.Equal(t, want.TitleFont, a.TitleFont)
	assert.Equal(t, want.Scale, a.Scale)
	assert.Equal(t, want.TitleColor.Hex(), a.TitleColor.Hex())
	assert.Equal(t, want.TitleSelectedColor.Hex(), a.TitleSelectedColor.Hex())
	assert.Equal(t, want.UnderlineHeight, a.UnderlineHeight)
	assert.Equal(t, want.CoverHeight, a.CoverHeight)
	assert.InDelta(t, 0.4, a.CoverColor.A, 1e-9)
	assert.Equal(t, 0.0, a.ViewBackColor.A)
}

func TestAttributesFromFile(t *testing.T) {
	cfg, err := config.LoadConfigFile(createTestYAML(t, validYAML))
	require.NoError(t, err)
	a, err := cfg.Attributes()
	require.NoError(t, err)

	assert.Equal(t, titlestrip.StyleCover, a.Style)
	assert.Equal(t, titlestrip.LayoutFixed, a.Layout)
	assert.Equal(t, titlestrip.Font{Size: 17, Bold: true}, a.TitleSelectedFont)
	assert.Equal(t, "#ff8000", a.TitleSelectedColor.Hex())
	assert.InDelta(t, 128.0/255, a.CoverColor.A, 1e-9)
	assert.False(t, a.CoverRadius)
}

func TestParseColor(t *testing.T) {
	c, err := config.ParseColor("Blue")
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", c.Hex())
	assert.Equal(t, 1.0, c.A)

	c, err = config.ParseColor("clear")
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.A)

	c, err = config.ParseColor("#00000066")
	require.NoError(t, err)
	assert.InDelta(t, 0.4, c.A, 1e-9)
	assert.Equal(t, "#00000066", config.FormatColor(c))

	assert.Equal(t, "#ff0000", config.FormatColor(titlestrip.RGBA(1, 0, 0, 1)))

	for _, bad := range []string{"", "nocolor", "#zzzzzz", "#0000000g", "123456"} {
		_, err := config.ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseStyleAndLayout(t *testing.T) {
	s, err := config.ParseStyle("Scale")
	require.NoError(t, err)
	assert.Equal(t, titlestrip.StyleScale, s)

	l, err := config.ParseLayout("fixed")
	require.NoError(t, err)
	assert.Equal(t, titlestrip.LayoutFixed, l)

	_, err = config.ParseLayout("")
	assert.Error(t, err)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.New()
	cfg.Style = "scale"
	cfg.Scale = 1.5
	cfg.Pages.Titles = []string{"One", "Two"}
	cfg.Pages.InitialIndex = 1

	require.NoError(t, config.SaveConfig(cfg, path))
	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWatchReloads(t *testing.T) {
	path := createTestYAML(t, "style: underline\n")

	got := make(chan *config.Config, 10)
	stop, err := config.Watch(path, func(cfg *config.Config, err error) {
		if err == nil {
			got <- cfg
		}
	})
	require.NoError(t, err)
	defer stop()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("style: cover\n"), 0644))

	timeout := time.After(3 * time.Second)
	for {
		select {
		case cfg := <-got:
			if cfg.Style == "cover" {
				return
			}
		case <-timeout:
			t.Fatal("Timeout waiting for config reload")
		}
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
style = "scale"
scale = 1.5

[pages]
titles = ["Inbox", "Sent"]
initial_index = 1
`), 0644))

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "scale", cfg.Style)
	assert.Equal(t, 1.5, cfg.Scale)
	assert.Equal(t, []string{"Inbox", "Sent"}, cfg.Pages.Titles)
	assert.Equal(t, 1, cfg.Pages.InitialIndex)
	assert.Equal(t, "automatic", cfg.Layout, "unset keys keep their defaults")

	require.NoError(t, os.WriteFile(path, []byte("style = \n"), 0644))
	_, err = config.LoadConfigFile(path)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestSaveTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.New()
	cfg.Layout = "fixed"
	cfg.Cover.Color = "#11223344"

	require.NoError(t, config.SaveConfig(cfg, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[cover]")

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestUnknownNameSuggestion(t *testing.T) {
	_, err := config.ParseStyle("undrline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "underline"?`)

	_, err = config.ParseLayout("Fixd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "fixed"?`)

	_, err = config.ParseStyle("sparkle")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}
