package cmd

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/hexturtle/config"
	"github.com/benoitkugler/hexturtle/render"
	"github.com/benoitkugler/hexturtle/svgfont"
)

func TestJobPNG(t *testing.T) {
	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "out.png")
	if err := (job{cfg: cfg, number: "48879"}).run(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Error("expected a PNG file")
	}
}

func TestJobPDFGallery(t *testing.T) {
	cfg := config.Default()
	cfg.Font = "block"
	cfg.Backend = config.BackendPDF
	cfg.Output = filepath.Join(t.TempDir(), "gallery.pdf")
	if err := (job{cfg: cfg, gallery: true}).run(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(cfg.Output); err != nil {
		t.Error(err)
	}
}

func TestJobTerm(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Backend = config.BackendTerm
	if err := (job{cfg: cfg, number: "255", out: &out}).run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "255 = 0xFF") {
		t.Errorf("missing title in\n%s", out.String())
	}
}

func TestJobErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = config.BackendTerm

	cfg.Font = filepath.Join(t.TempDir(), "nofont")
	err := (job{cfg: cfg, number: "1", out: &bytes.Buffer{}}).run()
	var fe *svgfont.FontResourceError
	if !errors.As(err, &fe) {
		t.Errorf("expected a *svgfont.FontResourceError, got %v", err)
	}

	// a font directory missing the marker glyph
	dir := t.TempDir()
	glyph := []byte(`<svg viewBox="0 0 12 20"><path d="M2,2 H10"/></svg>`)
	for _, name := range []string{"0.svg", "1.svg"} {
		if err := os.WriteFile(filepath.Join(dir, name), glyph, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg.Font = dir
	var out bytes.Buffer
	err = (job{cfg: cfg, number: "1", out: &out}).run()
	if !errors.As(err, &fe) || !errors.Is(err, fs.ErrNotExist) || fe.Symbol != 'x' {
		t.Errorf("expected a missing marker error, got %v", err)
	}
	if out.Len() != 0 {
		t.Error("nothing should be drawn on error")
	}

	cfg.Font = "segment"
	if err := (job{cfg: cfg, number: "-5", out: &out}).run(); !errors.Is(err, render.ErrInvalidNumber) {
		t.Errorf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestReadNumber(t *testing.T) {
	n, err := readNumber(strings.NewReader("\n  \n 42 \n7\n"))
	if err != nil || n != "42" {
		t.Errorf("readNumber() = %q, %v", n, err)
	}
	if _, err := readNumber(strings.NewReader("\n")); err == nil {
		t.Error("expected an error for an empty input")
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	out, err := execute(t, "16\n", "--backend", "term", "--scale", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "16 = 0x10") {
		t.Errorf("unexpected output\n%s", out)
	}

	if _, err := execute(t, "", "--backend", "gif", "1"); err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("expected a backend error, got %v", err)
	}

	out, err = execute(t, "", "version")
	if err != nil || !strings.HasPrefix(out, "hexturtle v"+Version) {
		t.Errorf("unexpected version output %q, %v", out, err)
	}

	out, err = execute(t, "", "fonts")
	if err != nil || out != "block\nsegment (default)\n" {
		t.Errorf("unexpected fonts output %q, %v", out, err)
	}

	out, err = execute(t, "", "fonts", "block", filepath.Join(t.TempDir(), "missing"))
	if err == nil || !strings.Contains(out, "block: ok") {
		t.Errorf("unexpected fonts output %q, %v", out, err)
	}
}
