package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported backends
const (
	BackendPNG    = "png"
	BackendPDF    = "pdf"
	BackendWindow = "window"
	BackendTerm   = "term"
)

// Backends lists the supported backends.
var Backends = []string{BackendPNG, BackendPDF, BackendWindow, BackendTerm}

// Config holds the complete rendering configuration
type Config struct {
	// Font is the name of a built-in font or a font directory
	Font  string  `toml:"font" yaml:"font"`
	Scale float64 `toml:"scale" yaml:"scale"`
	// Speed is the number of moves drawn per frame by the window backend;
	// 0 draws everything at once.
	Speed int `toml:"speed" yaml:"speed"`
	// Advance overrides the advance of the font, in glyph units
	Advance float64 `toml:"advance" yaml:"advance"`
	// YDown keeps the glyph y axis pointing down in the drawing
	YDown          bool   `toml:"y_down" yaml:"y_down"`
	GalleryColumns int    `toml:"gallery_columns" yaml:"gallery_columns"`
	Backend        string `toml:"backend" yaml:"backend"`
	// Output is the file written by the png and pdf backends
	Output string `toml:"output" yaml:"output"`
	// Strict rejects font files with unsupported svg elements
	Strict bool `toml:"strict" yaml:"strict"`

	Style StyleConfig `toml:"style" yaml:"style"`
}

// StyleConfig holds the drawing style of the backends
type StyleConfig struct {
	LineWidth  float64 `toml:"line_width" yaml:"line_width"`
	Margin     float64 `toml:"margin" yaml:"margin"`
	Stroke     string  `toml:"stroke" yaml:"stroke"`
	Background string  `toml:"background" yaml:"background"`
	Label      string  `toml:"label" yaml:"label"`
	// TermCell is the width of a terminal column, in drawing units
	TermCell float64 `toml:"term_cell" yaml:"term_cell"`
	TermInk  string  `toml:"term_ink" yaml:"term_ink"`
}

// Default returns the configuration used without config file.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML or YAML file,
// chosen by extension (.yaml and .yml for YAML, TOML otherwise).
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	default:
		_, err = toml.Decode(string(content), &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Font == "" {
		c.Font = "segment"
	}
	if c.Scale == 0 {
		c.Scale = 5
	}
	if c.Backend == "" {
		c.Backend = BackendPNG
	}
	if c.GalleryColumns == 0 {
		c.GalleryColumns = 6
	}

	// Style
	if c.Style.LineWidth == 0 {
		c.Style.LineWidth = 2
	}
	if c.Style.Margin == 0 {
		c.Style.Margin = 10
	}
	if c.Style.Stroke == "" {
		c.Style.Stroke = "#000000"
	}
	if c.Style.Background == "" {
		c.Style.Background = "#FFFFFF"
	}
	if c.Style.Label == "" {
		c.Style.Label = "#808080"
	}
	if c.Style.TermCell == 0 {
		c.Style.TermCell = 5
	}
	if c.Style.TermInk == "" {
		c.Style.TermInk = "█"
	}
}

// expandEnvVars expands environment variables in paths
func (c *Config) expandEnvVars() {
	c.Font = os.ExpandEnv(c.Font)
	c.Output = os.ExpandEnv(c.Output)
}

// Validate checks the values which have no sensible fallback.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", c.Scale)
	}
	if c.Advance < 0 {
		return fmt.Errorf("advance must not be negative, got %g", c.Advance)
	}
	if c.GalleryColumns < 0 {
		return fmt.Errorf("gallery_columns must not be negative, got %d", c.GalleryColumns)
	}
	if c.Style.LineWidth <= 0 {
		return fmt.Errorf("line_width must be positive, got %g", c.Style.LineWidth)
	}
	if c.Style.TermCell <= 0 {
		return fmt.Errorf("term_cell must be positive, got %g", c.Style.TermCell)
	}
	if len([]rune(c.Style.TermInk)) != 1 {
		return fmt.Errorf("term_ink must be a single character, got %q", c.Style.TermInk)
	}
	if !c.hasBackend() {
		return fmt.Errorf("unknown backend %q (expected one of %s)", c.Backend, strings.Join(Backends, ", "))
	}
	for _, col := range []string{c.Style.Stroke, c.Style.Background, c.Style.Label} {
		if _, err := ParseColor(col); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) hasBackend() bool {
	for _, b := range Backends {
		if b == c.Backend {
			return true
		}
	}
	return false
}

// OutputPath returns the output file, defaulting to
// hexturtle.<backend> in the working directory.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return "hexturtle." + c.Backend
}

// ParseColor parses an hexadecimal color, with the #RGB or #RRGGBB syntax.
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
