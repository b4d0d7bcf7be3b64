package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Font != "segment" || cfg.Scale != 5 || cfg.Speed != 0 || cfg.Backend != BackendPNG {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should be valid: %v", err)
	}
	if cfg.OutputPath() != "hexturtle.png" {
		t.Errorf("unexpected output path %s", cfg.OutputPath())
	}
}

func TestLoadTOML(t *testing.T) {
	t.Setenv("HEXTURTLE_OUT", "/tmp/out")
	path := writeConfig(t, "config.toml", `
font = "block"
scale = 2.5
speed = 3
backend = "pdf"
output = "${HEXTURTLE_OUT}/number.pdf"

[style]
line_width = 1.5
stroke = "#f00"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Font != "block" || cfg.Scale != 2.5 || cfg.Speed != 3 || cfg.Backend != BackendPDF {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.OutputPath() != "/tmp/out/number.pdf" {
		t.Errorf("output not expanded: %s", cfg.OutputPath())
	}
	if cfg.Style.LineWidth != 1.5 || cfg.Style.Margin != 10 {
		t.Errorf("unexpected style %+v", cfg.Style)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yml", `
font: ./myfont
advance: 14
y_down: true
gallery_columns: 9
backend: term
style:
  term_cell: 2
  term_ink: "#"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Font != "./myfont" || cfg.Advance != 14 || !cfg.YDown || cfg.GalleryColumns != 9 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Backend != BackendTerm || cfg.Style.TermCell != 2 || cfg.Style.TermInk != "#" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Scale != 5 {
		t.Errorf("expected default scale, got %g", cfg.Scale)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, file, content, wantErr string
	}{
		{"syntax", "bad.toml", "scale = ", "failed to parse"},
		{"yaml syntax", "bad.yaml", "scale: [", "failed to parse"},
		{"scale", "neg.toml", "scale = -1", "scale must be positive"},
		{"backend", "backend.toml", `backend = "svg"`, "unknown backend"},
		{"color", "color.toml", "[style]\nstroke = \"red\"", "invalid color"},
		{"ink", "ink.yaml", "style:\n  term_ink: ab", "single character"},
		{"columns", "cols.toml", "gallery_columns = -2", "gallery_columns"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected a not found error, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#000000", color.RGBA{A: 255}, false},
		{"#FF8000", color.RGBA{R: 255, G: 128, A: 255}, false},
		{"#0f0", color.RGBA{G: 255, A: 255}, false},
		{"FF8000", color.RGBA{}, true},
		{"#GG0000", color.RGBA{}, true},
		{"#1234", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
