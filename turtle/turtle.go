// Package turtle defines the minimal drawing collaborator used to
// render glyphs: a cursor which moves with its pen up or down.
//
// Backends (png, pdf, window, terminal) implement Pen, usually through
// a Polyline wrapping a Drawer, and Recorder provides a headless
// implementation, used to size the backends and in tests.
package turtle

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Pen is an immediate mode drawing cursor.
// The pen starts at (0,0), pen down.
type Pen interface {
	PenUp()
	PenDown()
	// MoveTo moves the cursor to (x, y), drawing
	// a straight line if the pen is down.
	MoveTo(x, y float64) error
}

// Labeler is implemented by pens able to write text,
// used to annotate the glyph gallery.
type Labeler interface {
	Label(x, y float64, text string) error
}

// Apply maps the point `p` through `m`.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Viewport returns the matrix mapping the drawing coordinates of `ext`
// to the device space of an image of size `width` x `height`,
// with a `margin` around the drawing and the origin at the top left corner.
// If `yUp` is true, the drawing y axis points up and is flipped.
func Viewport(ext rect.Rect, margin float64, yUp bool) (m matrix.Matrix, width, height int) {
	width = int(math.Ceil(ext.URx - ext.LLx + 2*margin))
	height = int(math.Ceil(ext.URy - ext.LLy + 2*margin))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if yUp {
		m = matrix.Translate(margin-ext.LLx, -ext.URy-margin).Mul(matrix.Matrix{1, 0, 0, -1, 0, 0})
	} else {
		m = matrix.Translate(margin-ext.LLx, margin-ext.LLy)
	}
	return m, width, height
}
