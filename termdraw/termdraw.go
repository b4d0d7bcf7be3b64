// Package termdraw previews drawings in a terminal, by
// plotting lines on a character grid.
package termdraw

import (
	"math"
	"strings"

	"github.com/benoitkugler/hexturtle/turtle"
	"github.com/charmbracelet/lipgloss"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// assert interface conformance
var (
	_ turtle.Drawer  = (*Canvas)(nil)
	_ turtle.Pen     = (*Pen)(nil)
	_ turtle.Labeler = (*Pen)(nil)
)

var (
	inkColor   = lipgloss.Color("#10B981")
	labelColor = lipgloss.Color("#6B7280")

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8B5CF6")).
			Padding(0, 1)
)

// Canvas is a grid of characters, addressed by (column, row).
type Canvas struct {
	cells [][]rune
	ink   rune

	a vec.Vec2 // current point
}

// NewCanvas returns a blank canvas.
func NewCanvas(cols, rows int, ink rune) *Canvas {
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return &Canvas{cells: cells, ink: ink}
}

// Size returns the number of columns and rows.
func (c *Canvas) Size() (cols, rows int) {
	if len(c.cells) == 0 {
		return 0, 0
	}
	return len(c.cells[0]), len(c.cells)
}

// At returns the character at (col, row), or 0 outside the grid.
func (c *Canvas) At(col, row int) rune {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return 0
	}
	return c.cells[row][col]
}

func (c *Canvas) set(col, row int, r rune) {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return
	}
	c.cells[row][col] = r
}

// plot draws the segment from (x0, y0) to (x1, y1) with Bresenham's algorithm
func (c *Canvas) plot(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(x0, y0, c.ink)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func round(a vec.Vec2) (int, int) {
	return int(math.Round(a.X)), int(math.Round(a.Y))
}

func (c *Canvas) Start(a vec.Vec2) { c.a = a }

func (c *Canvas) Line(b vec.Vec2) {
	x0, y0 := round(c.a)
	x1, y1 := round(b)
	c.plot(x0, y0, x1, y1)
	c.a = b
}

func (c *Canvas) Stop() {}

// Write writes `text` on the row, starting at `col`.
func (c *Canvas) Write(col, row int, text string) {
	for i, r := range []rune(text) {
		c.set(col+i, row, r)
	}
}

// String returns the grid, one line per row, without trailing spaces.
func (c *Canvas) String() string {
	lines := make([]string, len(c.cells))
	for i, row := range c.cells {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

// Options configures a terminal pen.
type Options struct {
	// Cell is the width of one column, in drawing units.
	// Rows are twice as high, to account for the
	// aspect ratio of terminal characters.
	Cell float64
	Ink  rune
	// YUp must be true when the drawing y axis points up.
	YUp bool
}

// DefaultOptions uses one column for 5 drawing units.
var DefaultOptions = Options{Cell: 5, Ink: '█', YUp: true}

// Pen draws on a canvas sized to enclose a given extent.
type Pen struct {
	*turtle.Polyline
	Canvas *Canvas
	labels map[[2]int]bool // cells holding label text
}

// NewPen returns a pen whose canvas covers `ext`, given in drawing coordinates.
func NewPen(ext rect.Rect, opts Options) *Pen {
	if opts.Cell <= 0 {
		opts.Cell = DefaultOptions.Cell
	}
	if opts.Ink == 0 {
		opts.Ink = DefaultOptions.Ink
	}
	m, w, h := turtle.Viewport(ext, 0, opts.YUp)
	m = m.Mul(matrix.Matrix{1 / opts.Cell, 0, 0, 1 / (2 * opts.Cell), 0, 0})
	cols := int(math.Floor(float64(w)/opts.Cell)) + 1
	rows := int(math.Floor(float64(h)/(2*opts.Cell))) + 1
	canvas := NewCanvas(cols, rows, opts.Ink)
	return &Pen{Polyline: turtle.NewPolyline(canvas, m), Canvas: canvas, labels: make(map[[2]int]bool)}
}

// Label writes `text` in the cell containing (x, y).
func (p *Pen) Label(x, y float64, text string) error {
	col, row := round(turtle.Apply(p.Matrix(), vec.Vec2{X: x, Y: y}))
	p.Canvas.Write(col, row, text)
	for i := range []rune(text) {
		p.labels[[2]int{col + i, row}] = true
	}
	return nil
}

// Render flushes the pending lines and returns the
// canvas inside a rounded frame, with `title` above it.
func (p *Pen) Render(title string) string {
	p.Flush()
	ink := lipgloss.NewStyle().Foreground(inkColor)
	label := lipgloss.NewStyle().Foreground(labelColor).Bold(true)
	var b strings.Builder
	for row, cells := range p.Canvas.cells {
		line := strings.TrimRight(string(cells), " ")
		for col, r := range []rune(line) {
			switch {
			case p.labels[[2]int{col, row}]:
				b.WriteString(label.Render(string(r)))
			case r == p.Canvas.ink:
				b.WriteString(ink.Render(string(r)))
			default:
				b.WriteRune(r)
			}
		}
		if row < len(p.Canvas.cells)-1 {
			b.WriteByte('\n')
		}
	}
	body := frameStyle.Render(b.String())
	if title == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(title), body)
}
