// Implements a raster backend to render glyphs,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/benoitkugler/hexturtle/turtle"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"
)

var _ turtle.Drawer = (*Renderer)(nil) // assert interface conformance

// Renderer strokes polylines on an image.
type Renderer struct {
	img    *image.RGBA
	dasher *rasterx.Dasher
}

// NewRenderer returns a renderer drawing on a new image of the given size,
// filled with `background`. Lines are stroked with `lineWidth` and `stroke`,
// with round caps and joins.
func NewRenderer(width, height int, lineWidth float64, stroke, background color.Color) *Renderer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	dasher.SetStroke(fixed.Int26_6(lineWidth*64), fixed.Int26_6(4*64), rasterx.RoundCap, rasterx.RoundCap,
		rasterx.RoundGap, rasterx.Round, nil, 0)
	dasher.SetColor(stroke)
	return &Renderer{img: img, dasher: dasher}
}

func toFixed(a vec.Vec2) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(a.X * 64), Y: fixed.Int26_6(a.Y * 64)}
}

func (rd *Renderer) Start(a vec.Vec2) { rd.dasher.Start(toFixed(a)) }

func (rd *Renderer) Line(b vec.Vec2) { rd.dasher.Line(toFixed(b)) }

// Stop strokes the current polyline.
func (rd *Renderer) Stop() {
	rd.dasher.Stop(false)
	rd.dasher.Draw()
	rd.dasher.Clear()
}

// Image returns the image drawn so far.
func (rd *Renderer) Image() *image.RGBA { return rd.img }

// EncodePNG writes `img` to `w`, in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes `img` to the file `filePath`.
func SavePNG(filePath string, img image.Image) error {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
