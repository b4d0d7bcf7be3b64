package turtle

import (
	"fmt"
	"strings"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var (
	_ Pen     = (*Recorder)(nil) // assert interface conformance
	_ Labeler = (*Recorder)(nil)
)

// Instruction is one recorded cursor move.
type Instruction struct {
	Down bool // pen state during the move
	X, Y float64
}

func (ins Instruction) String() string {
	letter := "M"
	if ins.Down {
		letter = "L"
	}
	return fmt.Sprintf("%s%g,%g", letter, ins.X, ins.Y)
}

// Label is a recorded text annotation
type Label struct {
	X, Y float64
	Text string
}

// Recorder is a headless Pen, storing every move.
// The zero value is ready to use.
type Recorder struct {
	Instructions []Instruction
	Labels       []Label

	up bool // the zero value is pen down, as a fresh turtle
}

func (r *Recorder) PenUp()   { r.up = true }
func (r *Recorder) PenDown() { r.up = false }

func (r *Recorder) MoveTo(x, y float64) error {
	r.Instructions = append(r.Instructions, Instruction{Down: !r.up, X: x, Y: y})
	return nil
}

func (r *Recorder) Label(x, y float64, text string) error {
	r.Labels = append(r.Labels, Label{X: x, Y: y, Text: text})
	return nil
}

// Reset clears the recorded content and puts the pen down.
func (r *Recorder) Reset() {
	r.Instructions = r.Instructions[:0]
	r.Labels = r.Labels[:0]
	r.up = false
}

// Segments returns the number of pen down moves.
func (r *Recorder) Segments() int {
	n := 0
	for _, ins := range r.Instructions {
		if ins.Down {
			n++
		}
	}
	return n
}

// Extent returns the smallest rectangle enclosing the
// recorded points. Labels only contribute their anchor.
// It returns the zero rectangle for an empty recording.
func (r *Recorder) Extent() rect.Rect {
	var (
		ext   rect.Rect
		first = true
	)
	extend := func(p vec.Vec2) {
		if first {
			ext = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
			first = false
			return
		}
		ext.LLx, ext.URx = min(ext.LLx, p.X), max(ext.URx, p.X)
		ext.LLy, ext.URy = min(ext.LLy, p.Y), max(ext.URy, p.Y)
	}
	for _, ins := range r.Instructions {
		extend(vec.Vec2{X: ins.X, Y: ins.Y})
	}
	for _, l := range r.Labels {
		extend(vec.Vec2{X: l.X, Y: l.Y})
	}
	return ext
}

// ReplayRange draws the recorded instructions from index `from`
// (included) to `to` (excluded) on `pen`, setting the pen state
// before each move.
// Labels are drawn once the last instruction has been replayed,
// if `pen` implements Labeler.
func (r *Recorder) ReplayRange(pen Pen, from, to int) error {
	to = max(0, min(to, len(r.Instructions)))
	from = max(0, min(from, to))
	for _, ins := range r.Instructions[from:to] {
		if ins.Down {
			pen.PenDown()
		} else {
			pen.PenUp()
		}
		if err := pen.MoveTo(ins.X, ins.Y); err != nil {
			return err
		}
	}
	if to < len(r.Instructions) {
		return nil
	}
	if lb, ok := pen.(Labeler); ok {
		for _, l := range r.Labels {
			if err := lb.Label(l.X, l.Y, l.Text); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReplayN draws the first `n` recorded instructions on `pen`.
func (r *Recorder) ReplayN(pen Pen, n int) error {
	return r.ReplayRange(pen, 0, n)
}

// Replay draws the whole recording on `pen`.
func (r *Recorder) Replay(pen Pen) error {
	return r.ReplayN(pen, len(r.Instructions))
}

// String returns the recording in a compact, svg path like syntax.
func (r *Recorder) String() string {
	chunks := make([]string, len(r.Instructions))
	for i, ins := range r.Instructions {
		chunks[i] = ins.String()
	}
	return strings.Join(chunks, " ")
}
