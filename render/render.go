// Package render draws glyphs and numbers on a turtle.Pen:
// each glyph is placed by an origin and a scale factor, and
// successive glyphs are separated by a constant advance.
package render

import (
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"

	"github.com/benoitkugler/hexturtle/svgfont"
	"github.com/benoitkugler/hexturtle/svgpath"
	"github.com/benoitkugler/hexturtle/turtle"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidNumber is returned by RenderNumber for inputs
// which are not non-negative decimal integers.
var ErrInvalidNumber = errors.New("not a non-negative decimal integer")

// Placement returns the matrix mapping glyph-local coordinates
// to drawing coordinates: (x, y) is mapped to
// (origin.X + scale*x, origin.Y + scale*y), or to
// (origin.X + scale*x, origin.Y - scale*y) if `flipY` is true.
func Placement(origin vec.Vec2, scale float64, flipY bool) matrix.Matrix {
	sy := scale
	if flipY {
		sy = -scale
	}
	return matrix.Matrix{scale, 0, 0, sy, origin.X, origin.Y}
}

// DrawPath maps each point of `path` by `m` and sends it to `pen`,
// lifting the pen before a MoveTo and lowering it before a LineTo.
func DrawPath(pen turtle.Pen, path svgpath.Path, m matrix.Matrix) error {
	for _, op := range path {
		switch op.(type) {
		case svgpath.MoveTo:
			pen.PenUp()
		case svgpath.LineTo:
			pen.PenDown()
		}
		p := turtle.Apply(m, op.Point())
		if err := pen.MoveTo(p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

// DrawGlyph draws every path of the glyph, in document order.
func DrawGlyph(pen turtle.Pen, g *svgfont.Glyph, m matrix.Matrix) error {
	for _, path := range g.Paths {
		if err := DrawPath(pen, path, m); err != nil {
			return err
		}
	}
	return nil
}

// Renderer draws sequences of symbols, left to right.
type Renderer struct {
	Font  *svgfont.Font
	Scale float64
	// Advance is the distance between two glyph origins, in glyph-local
	// units. If zero, the advance of the font is used.
	Advance float64
	// FlipY maps the glyph y axis (pointing down) to
	// a drawing y axis pointing up.
	FlipY bool
	// Origin is the drawing position of the first glyph origin.
	Origin vec.Vec2

	// Logger, if not nil, receives one line per rendered glyph.
	Logger *log.Logger
}

// NewRenderer returns a renderer for `font`, with unit scale
// and a flipped y axis.
func NewRenderer(font *svgfont.Font) *Renderer {
	return &Renderer{Font: font, Scale: 1, FlipY: true}
}

func (r *Renderer) advance() (float64, error) {
	if r.Advance > 0 {
		return r.Advance, nil
	}
	return r.Font.Advance()
}

// Origins returns the drawing positions of the origins of
// `n` consecutive glyphs.
func (r *Renderer) Origins(n int) ([]vec.Vec2, error) {
	adv, err := r.advance()
	if err != nil {
		return nil, err
	}
	out := make([]vec.Vec2, n)
	for i := range out {
		out[i] = r.Origin.Add(vec.Vec2{X: float64(i) * adv * r.Scale})
	}
	return out, nil
}

func (r *Renderer) drawSymbol(pen turtle.Pen, symbol rune, origin vec.Vec2) error {
	// resolve the glyph before any drawing
	g, err := r.Font.Glyph(symbol)
	if err != nil {
		return err
	}
	if r.Logger != nil {
		r.Logger.Printf("glyph %q at (%g, %g)", g.Symbol, origin.X, origin.Y)
	}
	return DrawGlyph(pen, g, Placement(origin, r.Scale, r.FlipY))
}

// RenderSymbols draws each symbol of `symbols` (hexadecimal digits,
// in any case, or the marker), stopping at the first error.
func (r *Renderer) RenderSymbols(pen turtle.Pen, symbols string) error {
	runes := []rune(symbols)
	origins, err := r.Origins(len(runes))
	if err != nil {
		return err
	}
	for i, s := range runes {
		if err := r.drawSymbol(pen, s, origins[i]); err != nil {
			return err
		}
	}
	return nil
}

// HexString returns the hexadecimal representation of the
// decimal integer `decimal`, prefixed by "0x", with upper case digits.
// Integers of any size are supported.
func HexString(decimal string) (string, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(decimal), 10)
	if !ok || n.Sign() < 0 {
		return "", fmt.Errorf("render: %q: %w", decimal, ErrInvalidNumber)
	}
	return "0" + string(svgfont.Marker) + strings.ToUpper(n.Text(16)), nil
}

// RenderNumber draws the hexadecimal representation of `decimal`,
// as returned by HexString.
func (r *Renderer) RenderNumber(pen turtle.Pen, decimal string) error {
	symbols, err := HexString(decimal)
	if err != nil {
		return err
	}
	return r.RenderSymbols(pen, symbols)
}

// Gallery draws every symbol of the font, with `perRow` glyphs per row,
// or on one row if `perRow` is not positive. Rows are separated by the
// line height of the font.
// If `pen` implements turtle.Labeler, each glyph is labeled by its symbol,
// at its origin.
func (r *Renderer) Gallery(pen turtle.Pen, perRow int) error {
	symbols := svgfont.Symbols[:]
	if perRow <= 0 || perRow > len(symbols) {
		perRow = len(symbols)
	}
	row, err := r.Origins(perRow)
	if err != nil {
		return err
	}
	lineHeight, err := r.Font.LineHeight()
	if err != nil {
		return err
	}
	step := lineHeight * r.Scale
	if r.FlipY {
		step = -step
	}
	labeler, _ := pen.(turtle.Labeler)
	for i, s := range symbols {
		origin := row[i%perRow].Add(vec.Vec2{Y: float64(i/perRow) * step})
		if _, err := r.Font.Glyph(s); err != nil {
			return err
		}
		if labeler != nil {
			if err := labeler.Label(origin.X, origin.Y, string(s)); err != nil {
				return err
			}
		}
		if err := r.drawSymbol(pen, s, origin); err != nil {
			return err
		}
	}
	return nil
}
