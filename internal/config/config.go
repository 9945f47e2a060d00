package config

import (
	"os"
	"path/filepath"

	"tabpager/internal/errors"
	"tabpager/internal/titlestrip"
)

// Font describes a title font.
type Font struct {
	Family string  `yaml:"family,omitempty" toml:"family,omitempty"` // Host font family, empty for the default
	Size   float64 `yaml:"size" toml:"size"`                         // Point size, or cells in the terminal
	Bold   bool    `yaml:"bold" toml:"bold"`
}

// Config represents the application configuration structure.
// It holds the title strip style, the page titles and host settings.
// Files ending in .toml are read and written as TOML, anything else as YAML.
type Config struct {
	Style        string  `yaml:"style" toml:"style"`                 // default, scale, cover or underline
	Layout       string  `yaml:"layout" toml:"layout"`               // automatic or fixed
	TitleSpacing float64 `yaml:"title_spacing" toml:"title_spacing"` // Gap around automatic-layout titles
	Font         Font    `yaml:"font" toml:"font"`
	SelectedFont Font    `yaml:"selected_font" toml:"selected_font"`
	Colors       struct {
		Title             string `yaml:"title" toml:"title"`
		TitleSelected     string `yaml:"title_selected" toml:"title_selected"`
		TitleBack         string `yaml:"title_back" toml:"title_back"`
		TitleSelectedBack string `yaml:"title_selected_back" toml:"title_selected_back"`
		ViewBack          string `yaml:"view_back" toml:"view_back"`
	} `yaml:"colors" toml:"colors"`
	Scale     float64 `yaml:"scale" toml:"scale"` // Zoom of the selected title in the scale style
	Underline struct {
		Height  float64 `yaml:"height" toml:"height"`
		Padding float64 `yaml:"padding" toml:"padding"` // Trimmed from the underline in automatic layout
		Color   string  `yaml:"color" toml:"color"`
		Radius  bool    `yaml:"radius" toml:"radius"`
	} `yaml:"underline" toml:"underline"`
	Cover struct {
		Height float64 `yaml:"height" toml:"height"`
		Margin float64 `yaml:"margin" toml:"margin"` // Added on each side in automatic layout
		Color  string  `yaml:"color" toml:"color"`
		Radius bool    `yaml:"radius" toml:"radius"`
	} `yaml:"cover" toml:"cover"`
	Pages struct {
		Titles       []string `yaml:"titles" toml:"titles"`
		InitialIndex int      `yaml:"initial_index" toml:"initial_index"`
	} `yaml:"pages" toml:"pages"`
	Terminal struct {
		CellWidth float64 `yaml:"cell_width" toml:"cell_width"` // Strip units per terminal cell
		FPS       int     `yaml:"fps" toml:"fps"`               // Frame rate of animations
	} `yaml:"terminal" toml:"terminal"`
}

// DefaultPath returns ~/.config/tabpager/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tabpager", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "error reading config file")
	}

	// Unset keys keep their defaults
	if err := unmarshal(path, data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultConfig mirrors titlestrip.DefaultAttributes.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Style = "underline"
	cfg.Layout = "automatic"
	cfg.TitleSpacing = 5
	cfg.Font = Font{Size: 15}
	cfg.SelectedFont = Font{Size: 15}

	cfg.Colors.Title = "black"
	cfg.Colors.TitleSelected = "blue"
	cfg.Colors.TitleBack = "white"
	cfg.Colors.TitleSelectedBack = "white"
	cfg.Colors.ViewBack = "clear"

	cfg.Scale = 1.25

	cfg.Underline.Height = 2
	cfg.Underline.Padding = 0
	cfg.Underline.Color = "blue"
	cfg.Underline.Radius = true

	cfg.Cover.Height = 25
	cfg.Cover.Margin = 5
	cfg.Cover.Color = "#00000066"
	cfg.Cover.Radius = true

	cfg.Pages.Titles = []string{"Home", "Discover", "Library", "Downloads", "Settings"}
	cfg.Pages.InitialIndex = 0

	cfg.Terminal.CellWidth = 1
	cfg.Terminal.FPS = 60

	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := marshal(path, cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

func invalid(param string, err error) error {
	return errors.NewConfigError("invalid configuration", param, errors.InvalidConfig, err)
}

// Validate checks if the configuration is valid.
// The first offending parameter is reported as a *errors.ConfigError.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrInvalidConfig
	}

	if _, err := ParseStyle(c.Style); err != nil {
		return invalid("style", err)
	}
	if _, err := ParseLayout(c.Layout); err != nil {
		return invalid("layout", err)
	}

	nonNegative := []struct {
		param string
		value float64
	}{
		{"title_spacing", c.TitleSpacing},
		{"underline.height", c.Underline.Height},
		{"underline.padding", c.Underline.Padding},
		{"cover.height", c.Cover.Height},
		{"cover.margin", c.Cover.Margin},
	}
	for _, v := range nonNegative {
		if v.value < 0 {
			return invalid(v.param, errors.Newf("%v must be >= 0", v.value))
		}
	}
	if c.Font.Size <= 0 {
		return invalid("font.size", errors.Newf("%v must be > 0", c.Font.Size))
	}
	if c.SelectedFont.Size <= 0 {
		return invalid("selected_font.size", errors.Newf("%v must be > 0", c.SelectedFont.Size))
	}
	if c.Scale < 1 {
		return invalid("scale", errors.Newf("%v must be >= 1", c.Scale))
	}

	colors := []struct {
		param string
		value string
	}{
		{"colors.title", c.Colors.Title},
		{"colors.title_selected", c.Colors.TitleSelected},
		{"colors.title_back", c.Colors.TitleBack},
		{"colors.title_selected_back", c.Colors.TitleSelectedBack},
		{"colors.view_back", c.Colors.ViewBack},
		{"underline.color", c.Underline.Color},
		{"cover.color", c.Cover.Color},
	}
	for _, v := range colors {
		if _, err := ParseColor(v.value); err != nil {
			return invalid(v.param, err)
		}
	}

	if n := len(c.Pages.Titles); n > 0 {
		if err := errors.CheckIndex("pages", c.Pages.InitialIndex, n); err != nil {
			return invalid("pages.initial_index", err)
		}
	} else if c.Pages.InitialIndex != 0 {
		return invalid("pages.initial_index", errors.New("no titles configured"))
	}

	if c.Terminal.CellWidth <= 0 {
		return invalid("terminal.cell_width", errors.Newf("%v must be > 0", c.Terminal.CellWidth))
	}
	if c.Terminal.FPS < 1 || c.Terminal.FPS > 240 {
		return invalid("terminal.fps", errors.Newf("%d not in [1, 240]", c.Terminal.FPS))
	}
	return nil
}

// Attributes converts the configuration into title strip attributes.
func (c *Config) Attributes() (titlestrip.Attributes, error) {
	if err := c.Validate(); err != nil {
		return titlestrip.Attributes{}, err
	}
	a := titlestrip.DefaultAttributes()
	a.Style, _ = ParseStyle(c.Style)
	a.Layout, _ = ParseLayout(c.Layout)
	a.TitleSpacing = c.TitleSpacing
	a.TitleFont = titlestrip.Font(c.Font)
	a.TitleSelectedFont = titlestrip.Font(c.SelectedFont)
	a.TitleColor = mustColor(c.Colors.Title)
	a.TitleSelectedColor = mustColor(c.Colors.TitleSelected)
	a.TitleBackColor = mustColor(c.Colors.TitleBack)
	a.TitleSelectedBackColor = mustColor(c.Colors.TitleSelectedBack)
	a.ViewBackColor = mustColor(c.Colors.ViewBack)
	a.Scale = c.Scale

	a.UnderlineHeight = c.Underline.Height
	a.UnderlinePadding = c.Underline.Padding
	a.UnderlineColor = mustColor(c.Underline.Color)
	a.UnderlineRadius = c.Underline.Radius

	a.CoverHeight = c.Cover.Height
	a.CoverMargin = c.Cover.Margin
	a.CoverColor = mustColor(c.Cover.Color)
	a.CoverRadius = c.Cover.Radius
	return a, nil
}

// mustColor is only called on values Validate accepted.
func mustColor(s string) titlestrip.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
