package turtle

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Drawer is implemented by the backends able to stroke
// polylines, given in device space.
type Drawer interface {
	// Start starts a new polyline at the given point.
	Start(a vec.Vec2)
	// Line adds a linear segment to the current polyline.
	Line(b vec.Vec2)
	// Stop ends the current polyline and strokes it.
	Stop()
}

var _ Pen = (*Polyline)(nil) // assert interface conformance

// Polyline implements Pen on top of a Drawer: consecutive
// pen down moves are grouped into one polyline, which is
// stopped when the pen goes up.
type Polyline struct {
	drawer Drawer
	m      matrix.Matrix // drawing to device space

	current vec.Vec2 // in device space
	up      bool
	open    bool // a polyline has been started
}

// NewPolyline returns a pen sending its moves, mapped by `m`, to `drawer`.
func NewPolyline(drawer Drawer, m matrix.Matrix) *Polyline {
	return &Polyline{drawer: drawer, m: m, current: Apply(m, vec.Vec2{})}
}

// Matrix returns the mapping from drawing to device space
func (p *Polyline) Matrix() matrix.Matrix { return p.m }

func (p *Polyline) PenUp() {
	p.up = true
	p.Flush()
}

func (p *Polyline) PenDown() { p.up = false }

func (p *Polyline) MoveTo(x, y float64) error {
	next := Apply(p.m, vec.Vec2{X: x, Y: y})
	if !p.up {
		if !p.open {
			p.drawer.Start(p.current)
			p.open = true
		}
		p.drawer.Line(next)
	}
	p.current = next
	return nil
}

// Flush strokes the pending polyline, if any.
// It must be called once drawing is done.
func (p *Polyline) Flush() {
	if p.open {
		p.drawer.Stop()
		p.open = false
	}
}
