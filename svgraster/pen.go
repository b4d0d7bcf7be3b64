package svgraster

import (
	"image"
	"image/color"

	"github.com/benoitkugler/hexturtle/turtle"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var (
	_ turtle.Pen       = (*Pen)(nil) // assert interface conformance
	_ turtle.Labeler   = (*Pen)(nil)
	_ drivers.Displayer = imageDisplay{}
)

// labelHeight is the ascent of the label font, in pixels
const labelHeight = 6

// Options configures a raster pen.
type Options struct {
	LineWidth  float64 // in pixels
	Margin     float64 // around the drawing, in pixels
	Stroke     color.RGBA
	Background color.RGBA
	LabelColor color.RGBA
	// YUp must be true when the drawing y axis points up.
	YUp bool
}

// DefaultOptions draws black lines, 2 pixels wide, on a white background.
var DefaultOptions = Options{
	LineWidth:  2,
	Margin:     10,
	Stroke:     color.RGBA{A: 0xff},
	Background: color.RGBA{0xff, 0xff, 0xff, 0xff},
	LabelColor: color.RGBA{0x80, 0x80, 0x80, 0xff},
	YUp:        true,
}

// Pen draws on an image sized to enclose a given extent.
type Pen struct {
	*turtle.Polyline
	rd   *Renderer
	opts Options
}

// NewPen returns a pen whose image covers `ext`, given in drawing
// coordinates, plus the margin of `opts`.
func NewPen(ext rect.Rect, opts Options) *Pen {
	m, w, h := turtle.Viewport(ext, opts.Margin, opts.YUp)
	rd := NewRenderer(w, h, opts.LineWidth, opts.Stroke, opts.Background)
	return &Pen{Polyline: turtle.NewPolyline(rd, m), rd: rd, opts: opts}
}

// Label writes `text` with its top left corner at (x, y).
func (p *Pen) Label(x, y float64, text string) error {
	pos := turtle.Apply(p.Matrix(), vec.Vec2{X: x, Y: y})
	tinyfont.WriteLine(imageDisplay{p.rd.img}, &tinyfont.TomThumb,
		int16(pos.X)+1, int16(pos.Y)+labelHeight, text, p.opts.LabelColor)
	return nil
}

// Image flushes the pending lines and returns the image.
func (p *Pen) Image() *image.RGBA {
	p.Flush()
	return p.rd.Image()
}

// SavePNG flushes the pending lines and saves the image to `filePath`.
func (p *Pen) SavePNG(filePath string) error {
	return SavePNG(filePath, p.Image())
}

// imageDisplay exposes an image as a tinyfont target
type imageDisplay struct{ img *image.RGBA }

func (d imageDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d imageDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.img.SetRGBA(int(x), int(y), c)
}

func (d imageDisplay) Display() error { return nil }
