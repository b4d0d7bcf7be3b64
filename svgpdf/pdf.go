// Implements a PDF backend to render glyphs,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"io"

	"github.com/benoitkugler/hexturtle/turtle"
	"github.com/jung-kurt/gofpdf"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// assert interface conformance
var (
	_ turtle.Drawer  = (*pather)(nil)
	_ turtle.Pen     = (*Pen)(nil)
	_ turtle.Labeler = (*Pen)(nil)
)

// Options configures a PDF pen.
// Lengths are expressed in points.
type Options struct {
	LineWidth  float64
	Margin     float64
	Stroke     [3]int // RGB
	LabelColor [3]int
	FontSize   float64 // of the labels
	// YUp must be true when the drawing y axis points up.
	YUp bool
}

// DefaultOptions draws black lines on a single page.
var DefaultOptions = Options{
	LineWidth:  2,
	Margin:     10,
	LabelColor: [3]int{128, 128, 128},
	FontSize:   8,
	YUp:        true,
}

// implements the path commands, and keeps track of
// the bounding box of the stroked lines, in page space
type pather struct {
	pdf         *gofpdf.Fpdf
	a           vec.Vec2 // current point
	boundingBox rect.Rect
	empty       bool
}

func (p *pather) extend(b vec.Vec2) {
	if p.empty {
		p.boundingBox = rect.Rect{LLx: b.X, LLy: b.Y, URx: b.X, URy: b.Y}
		p.empty = false
		return
	}
	p.boundingBox.LLx, p.boundingBox.URx = min(p.boundingBox.LLx, b.X), max(p.boundingBox.URx, b.X)
	p.boundingBox.LLy, p.boundingBox.URy = min(p.boundingBox.LLy, b.Y), max(p.boundingBox.URy, b.Y)
}

func (p *pather) Start(a vec.Vec2) {
	p.pdf.MoveTo(a.X, a.Y)
	p.a = a
}

func (p *pather) Line(b vec.Vec2) {
	p.pdf.LineTo(b.X, b.Y)
	p.extend(p.a)
	p.extend(b)
	p.a = b
}

// Stop strokes the current path.
func (p *pather) Stop() {
	p.pdf.DrawPath("D")
}

// Pen draws on a single page sized to enclose a given extent.
type Pen struct {
	*turtle.Polyline
	pather *pather
	opts   Options
}

// NewPen returns a pen writing to a new document, whose only page
// covers `ext`, given in drawing coordinates, plus the margin of `opts`.
func NewPen(ext rect.Rect, opts Options) *Pen {
	m, w, h := turtle.Viewport(ext, opts.Margin, opts.YUp)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(w), Ht: float64(h)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineWidth(opts.LineWidth)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	pdf.SetDrawColor(opts.Stroke[0], opts.Stroke[1], opts.Stroke[2])

	pa := &pather{pdf: pdf, empty: true}
	return &Pen{Polyline: turtle.NewPolyline(pa, m), pather: pa, opts: opts}
}

// Label writes `text` with its top left corner at (x, y).
func (p *Pen) Label(x, y float64, text string) error {
	pos := turtle.Apply(p.Matrix(), vec.Vec2{X: x, Y: y})
	pdf := p.pather.pdf
	pdf.SetFont("Helvetica", "", p.opts.FontSize)
	pdf.SetTextColor(p.opts.LabelColor[0], p.opts.LabelColor[1], p.opts.LabelColor[2])
	pdf.Text(pos.X+1, pos.Y+p.opts.FontSize, text)
	return pdf.Error()
}

// Bounds returns the bounding box of the lines stroked so far,
// in page space (points, origin at the top left corner).
func (p *Pen) Bounds() rect.Rect {
	p.Flush()
	return p.pather.boundingBox
}

// Output flushes the pending lines and writes the document to `w`.
func (p *Pen) Output(w io.Writer) error {
	p.Flush()
	return p.pather.pdf.Output(w)
}

// Save flushes the pending lines and writes the document to `filePath`.
func (p *Pen) Save(filePath string) error {
	p.Flush()
	return p.pather.pdf.OutputFileAndClose(filePath)
}
