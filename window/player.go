// Package window animates a recorded drawing in a desktop
// window, a few moves per frame, as a turtle would draw it.
package window

import (
	"image"

	"github.com/benoitkugler/hexturtle/svgraster"
	"github.com/benoitkugler/hexturtle/turtle"
)

// Options configures the window.
type Options struct {
	Title string
	// Speed is the number of moves drawn per tick.
	// Zero or less draws everything at once.
	Speed int
	Pen   svgraster.Options
}

// Player replays a recording on a raster pen, step by step.
type Player struct {
	rec   *turtle.Recorder
	pen   *svgraster.Pen
	speed int
	done  int // number of instructions replayed
}

// NewPlayer returns a player drawing on an image sized
// to enclose the recording.
func NewPlayer(rec *turtle.Recorder, opts Options) *Player {
	return &Player{
		rec:   rec,
		pen:   svgraster.NewPen(rec.Extent(), opts.Pen),
		speed: opts.Speed,
		done:  -1,
	}
}

// Done returns true once every instruction has been drawn.
func (p *Player) Done() bool { return p.done >= len(p.rec.Instructions) }

// Step draws the next instructions.
func (p *Player) Step() error {
	if p.Done() {
		return nil
	}
	from := max(p.done, 0)
	to := len(p.rec.Instructions)
	if p.speed > 0 {
		to = min(from+p.speed, to)
	}
	if err := p.rec.ReplayRange(p.pen, from, to); err != nil {
		return err
	}
	p.pen.Flush()
	p.done = to
	return nil
}

// Image returns the image drawn so far.
func (p *Player) Image() *image.RGBA { return p.pen.Image() }
