package svgpdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/hexturtle/fonts"
	"github.com/benoitkugler/hexturtle/render"
	"github.com/benoitkugler/hexturtle/svgfont"
	"github.com/benoitkugler/hexturtle/turtle"
	"seehuhn.de/go/geom/rect"
)

func TestBoundingBox(t *testing.T) {
	var rec turtle.Recorder
	rec.PenUp()
	rec.MoveTo(0, 0)
	rec.PenDown()
	rec.MoveTo(20, 0)
	rec.PenUp()
	rec.MoveTo(20, 50) // not stroked

	pen := NewPen(rect.Rect{URx: 20}, DefaultOptions)
	if err := rec.Replay(pen); err != nil {
		t.Fatal(err)
	}
	if bb := pen.Bounds(); bb != (rect.Rect{LLx: 10, LLy: 10, URx: 30, URy: 10}) {
		t.Errorf("unexpected bounding box %v", bb)
	}
	w, h := pen.pather.pdf.GetPageSize()
	if w != 40 || h != 20 {
		t.Errorf("unexpected page size %g x %g", w, h)
	}

	var buf bytes.Buffer
	if err := pen.Output(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("expected a PDF document")
	}
}

func renderToPDF(t *testing.T, fileName string, draw func(r *render.Renderer, pen turtle.Pen) error) {
	fsys, _ := fonts.Lookup("block")
	r := render.NewRenderer(svgfont.New(fsys, "block"))
	r.Scale = 4

	var rec turtle.Recorder
	if err := draw(r, &rec); err != nil {
		t.Fatal(err)
	}
	pen := NewPen(rec.Extent(), DefaultOptions)
	if err := rec.Replay(pen); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(t.TempDir(), fileName)
	if err := pen.Save(file); err != nil {
		t.Fatalf("can't save pdf: %s", err)
	}
	b, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Errorf("%s is not a PDF document", fileName)
	}
}

func TestNumber(t *testing.T) {
	renderToPDF(t, "number.pdf", func(r *render.Renderer, pen turtle.Pen) error {
		return r.RenderNumber(pen, "48879")
	})
}

func TestGallery(t *testing.T) {
	renderToPDF(t, "gallery.pdf", func(r *render.Renderer, pen turtle.Pen) error {
		return r.Gallery(pen, 9)
	})
}
