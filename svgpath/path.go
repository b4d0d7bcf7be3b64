// Implements an abstract representation of
// the straight line subset of svg paths, which can then be consumed
// by a pen (see the render package).
package svgpath

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
)

// Operation groups the different path operations.
// Points are expressed in glyph-local coordinates.
type Operation interface {
	command() pathCommand
	// Point returns the point reached after the operation.
	Point() vec.Vec2
}

// MoveTo moves the pen to a point, without drawing
type MoveTo vec.Vec2

// LineTo draws a straight line from the current point
type LineTo vec.Vec2

func (MoveTo) command() pathCommand { return pathMoveTo }
func (LineTo) command() pathCommand { return pathLineTo }

func (op MoveTo) Point() vec.Vec2 { return vec.Vec2(op) }
func (op LineTo) Point() vec.Vec2 { return vec.Vec2(op) }

// Path describes a sequence of basic operations, which should not be nil
type Path []Operation

func formatPoint(letter byte, p vec.Vec2) string {
	return string(letter) + strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64)
}

// ToSVGPath returns a string representation of the path,
// using absolute commands only.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op.command() {
		case pathMoveTo:
			chunks[i] = formatPoint('M', op.Point())
		case pathLineTo:
			chunks[i] = formatPoint('L', op.Point())
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new subpath at the given point.
func (p *Path) Start(a vec.Vec2) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current subpath.
func (p *Path) Line(b vec.Vec2) {
	*p = append(*p, LineTo(b))
}
