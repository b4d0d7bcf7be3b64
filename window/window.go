//go:build cgo

package window

import (
	"github.com/benoitkugler/hexturtle/turtle"
	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a window animating `rec`.
// It blocks until the window closes.
func Run(rec *turtle.Recorder, opts Options) error {
	player := NewPlayer(rec, opts)
	b := player.Image().Bounds()

	g := &game{player: player}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	player *Player
	frame  *ebiten.Image
	dirty  bool
}

func (g *game) Update() error {
	if g.player.Done() {
		return nil
	}
	g.dirty = true
	return g.player.Step()
}

func (g *game) Draw(screen *ebiten.Image) {
	img := g.player.Image()
	if g.frame == nil {
		g.frame = ebiten.NewImage(img.Bounds().Dx(), img.Bounds().Dy())
		g.dirty = true
	}
	if g.dirty {
		g.frame.WritePixels(img.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.player.Image().Bounds()
	return b.Dx(), b.Dy()
}
