package svgfont

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Marker is the symbol of the hexadecimal prefix glyph ("0x").
const Marker = 'x'

// FileExt is the extension of glyph files
const FileExt = ".svg"

// ErrUnknownSymbol is returned for symbols which are
// neither an hexadecimal digit nor the marker.
var ErrUnknownSymbol = errors.New("not an hexadecimal digit")

// Symbols lists every glyph a font must provide,
// in gallery order.
var Symbols = [...]rune{
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', 'A', 'B', 'C', 'D', 'E', 'F', Marker,
}

// FontResourceError is returned when the glyph file for
// a symbol is missing or unreadable.
type FontResourceError struct {
	Symbol rune
	Path   string // the file, or the font directory
	Err    error
}

func (e *FontResourceError) Error() string {
	if e.Symbol == 0 {
		return fmt.Sprintf("svgfont: font %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("svgfont: glyph %q (%s): %s", e.Symbol, e.Path, e.Err)
}

func (e *FontResourceError) Unwrap() error { return e.Err }

// Normalize returns the canonical symbol for `r`:
// lower case digits are mapped to upper case and 'X' to the marker.
func Normalize(r rune) (rune, bool) {
	switch {
	case '0' <= r && r <= '9', 'A' <= r && r <= 'F':
		return r, true
	case 'a' <= r && r <= 'f':
		return r - 'a' + 'A', true
	case r == Marker, r == 'X':
		return Marker, true
	default:
		return 0, false
	}
}

// FileName returns the name of the glyph file for `symbol`
func FileName(symbol rune) (string, error) {
	s, ok := Normalize(symbol)
	if !ok {
		return "", &FontResourceError{Symbol: symbol, Err: ErrUnknownSymbol}
	}
	return string(s) + FileExt, nil
}

// Font is a directory of glyph files, one per symbol.
// Parsed glyphs are cached, so that a font is not
// safe for concurrent use.
type Font struct {
	fsys      fs.FS
	name      string
	ErrorMode ErrorMode

	glyphs map[rune]*Glyph
}

// New returns a font reading its glyphs from `fsys`.
// `name` is only used in error messages.
func New(fsys fs.FS, name string) *Font {
	return &Font{fsys: fsys, name: name, ErrorMode: WarnErrorMode, glyphs: make(map[rune]*Glyph)}
}

// Open returns the font stored in the directory `dir`.
func Open(dir string) (*Font, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &FontResourceError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &FontResourceError{Path: dir, Err: errors.New("not a directory")}
	}
	return New(os.DirFS(dir), dir), nil
}

// Name returns the font name, as given to New
func (f *Font) Name() string { return f.name }

// Glyph returns the parsed glyph for `symbol`, loading its file
// on first use.
// A missing or unreadable file returns a *FontResourceError, while
// invalid path data returns the error of the svgpath package, wrapped.
func (f *Font) Glyph(symbol rune) (*Glyph, error) {
	fileName, err := FileName(symbol)
	if err != nil {
		return nil, err
	}
	s, _ := Normalize(symbol)
	if g, ok := f.glyphs[s]; ok {
		return g, nil
	}

	location := f.name + "/" + fileName
	file, err := f.fsys.Open(fileName)
	if err != nil {
		return nil, &FontResourceError{Symbol: s, Path: location, Err: err}
	}
	defer file.Close()

	g, err := ReadGlyphStream(file, f.ErrorMode)
	if errors.Is(err, ErrNoPath) {
		return nil, &FontResourceError{Symbol: s, Path: location, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("svgfont: glyph %q (%s): %w", s, location, err)
	}
	g.Symbol = s
	f.glyphs[s] = g
	return g, nil
}

// Advance returns the constant horizontal distance between two
// glyph origins, in glyph-local units: the width of the viewBox
// of the '0' glyph.
func (f *Font) Advance() (float64, error) {
	g, err := f.Glyph('0')
	if err != nil {
		return 0, err
	}
	if g.ViewBox.W <= 0 {
		return 0, &FontResourceError{Symbol: '0', Path: f.name, Err: errors.New("missing viewBox width")}
	}
	return g.ViewBox.W, nil
}

// LineHeight returns the height of the viewBox of the '0' glyph,
// used to stack rows of glyphs.
func (f *Font) LineHeight() (float64, error) {
	g, err := f.Glyph('0')
	if err != nil {
		return 0, err
	}
	if g.ViewBox.H <= 0 {
		return 0, &FontResourceError{Symbol: '0', Path: f.name, Err: errors.New("missing viewBox height")}
	}
	return g.ViewBox.H, nil
}

// Check loads every glyph of the font. Missing files are
// reported together, other errors are returned immediately.
func (f *Font) Check() error {
	var missing []string
	for _, s := range Symbols {
		if _, err := f.Glyph(s); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, string(s))
				continue
			}
			return err
		}
	}
	if len(missing) != 0 {
		return &FontResourceError{Path: f.name, Err: fmt.Errorf("missing glyphs %s: %w", strings.Join(missing, ", "), fs.ErrNotExist)}
	}
	return nil
}
