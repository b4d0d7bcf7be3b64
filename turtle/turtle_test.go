package turtle

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func square(pen Pen) {
	pen.PenUp()
	pen.MoveTo(1, 2)
	pen.PenDown()
	pen.MoveTo(5, 2)
	pen.MoveTo(5, 8)
	pen.PenUp()
	pen.MoveTo(-3, 0)
	pen.PenDown()
	pen.MoveTo(-3, 4)
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	square(&rec)
	rec.Label(10, -1, "0")

	want := []Instruction{
		{false, 1, 2}, {true, 5, 2}, {true, 5, 8}, {false, -3, 0}, {true, -3, 4},
	}
	if diff := cmp.Diff(want, rec.Instructions); diff != "" {
		t.Error(diff)
	}
	if rec.Segments() != 3 {
		t.Errorf("expected 3 segments, got %d", rec.Segments())
	}
	if got := rec.String(); got != "M1,2 L5,2 L5,8 M-3,0 L-3,4" {
		t.Errorf("unexpected string %s", got)
	}
	if ext := rec.Extent(); ext != (rect.Rect{LLx: -3, LLy: -1, URx: 10, URy: 8}) {
		t.Errorf("unexpected extent %v", ext)
	}

	rec.Reset()
	if len(rec.Instructions) != 0 || !rec.Extent().IsZero() {
		t.Error("expected an empty recorder")
	}
	rec.MoveTo(1, 1)
	if !rec.Instructions[0].Down {
		t.Error("a reset pen should be down")
	}
}

func TestReplay(t *testing.T) {
	var rec, replayed Recorder
	square(&rec)
	rec.Label(0, 0, "A")
	if err := rec.Replay(&replayed); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rec, replayed, cmp.AllowUnexported(Recorder{})); diff != "" {
		t.Error(diff)
	}

	var partial Recorder
	if err := rec.ReplayN(&partial, 2); err != nil {
		t.Fatal(err)
	}
	if len(partial.Instructions) != 2 || len(partial.Labels) != 0 {
		t.Errorf("unexpected partial replay %v", partial)
	}
}

type failingPen struct{ Recorder }

var errFull = errors.New("full")

func (f *failingPen) MoveTo(x, y float64) error {
	if len(f.Instructions) == 2 {
		return errFull
	}
	return f.Recorder.MoveTo(x, y)
}

func TestReplayError(t *testing.T) {
	var rec Recorder
	square(&rec)
	if err := rec.Replay(&failingPen{}); !errors.Is(err, errFull) {
		t.Errorf("expected errFull, got %v", err)
	}
}

// logs the calls it receives
type drawerLog struct{ strings.Builder }

func (d *drawerLog) Start(a vec.Vec2) { fmt.Fprintf(d, "S%g,%g ", a.X, a.Y) }
func (d *drawerLog) Line(b vec.Vec2)  { fmt.Fprintf(d, "L%g,%g ", b.X, b.Y) }
func (d *drawerLog) Stop()            { d.WriteString("| ") }

func TestPolyline(t *testing.T) {
	var log drawerLog
	pen := NewPolyline(&log, matrix.Identity)
	pen.MoveTo(1, 1) // a fresh pen is down
	square(pen)
	pen.Flush()
	pen.Flush()

	want := "S0,0 L1,1 | S1,2 L5,2 L5,8 | S-3,0 L-3,4 | "
	if got := log.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestViewport(t *testing.T) {
	ext := rect.Rect{LLx: -3, LLy: 0, URx: 5, URy: 8}

	m, w, h := Viewport(ext, 1, false)
	if w != 10 || h != 10 {
		t.Errorf("unexpected size %d x %d", w, h)
	}
	if p := Apply(m, vec.Vec2{X: -3, Y: 0}); p != (vec.Vec2{X: 1, Y: 1}) {
		t.Errorf("unexpected lower left corner %v", p)
	}

	m, _, _ = Viewport(ext, 1, true)
	if p := Apply(m, vec.Vec2{X: -3, Y: 8}); p != (vec.Vec2{X: 1, Y: 1}) {
		t.Errorf("upper left corner should map to the top of the image, got %v", p)
	}
	if p := Apply(m, vec.Vec2{X: 5, Y: 0}); p != (vec.Vec2{X: 9, Y: 9}) {
		t.Errorf("lower right corner should map to the bottom of the image, got %v", p)
	}

	if _, w, h := Viewport(rect.Rect{}, 0, true); w != 1 || h != 1 {
		t.Errorf("expected a minimal image, got %d x %d", w, h)
	}
}
