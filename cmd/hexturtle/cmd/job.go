package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/benoitkugler/hexturtle/config"
	"github.com/benoitkugler/hexturtle/fonts"
	"github.com/benoitkugler/hexturtle/render"
	"github.com/benoitkugler/hexturtle/svgfont"
	"github.com/benoitkugler/hexturtle/svgpdf"
	"github.com/benoitkugler/hexturtle/svgraster"
	"github.com/benoitkugler/hexturtle/termdraw"
	"github.com/benoitkugler/hexturtle/turtle"
	"github.com/benoitkugler/hexturtle/window"
)

// job is one rendering, from the font to the backend output
type job struct {
	cfg     *config.Config
	number  string // decimal, ignored for the gallery
	gallery bool
	out     io.Writer   // terminal backend output
	logger  *log.Logger // optional
}

// openFont resolves `name` as a built-in font first, then as a directory.
func openFont(name string, strict bool) (*svgfont.Font, error) {
	var font *svgfont.Font
	if fsys, ok := fonts.Lookup(name); ok {
		font = svgfont.New(fsys, name)
	} else {
		var err error
		if font, err = svgfont.Open(name); err != nil {
			return nil, err
		}
	}
	if strict {
		font.ErrorMode = svgfont.StrictErrorMode
	}
	return font, nil
}

func (j job) title() string {
	if j.gallery {
		return "hexturtle " + j.cfg.Font
	}
	s, _ := render.HexString(j.number)
	return fmt.Sprintf("hexturtle %s = %s", j.number, s)
}

// record renders the number, or the gallery, into a recorder
func (j job) record() (*turtle.Recorder, error) {
	font, err := openFont(j.cfg.Font, j.cfg.Strict)
	if err != nil {
		return nil, err
	}
	r := render.NewRenderer(font)
	r.Scale = j.cfg.Scale
	r.Advance = j.cfg.Advance
	r.FlipY = !j.cfg.YDown
	r.Logger = j.logger

	var rec turtle.Recorder
	if j.gallery {
		err = r.Gallery(&rec, j.cfg.GalleryColumns)
	} else {
		err = r.RenderNumber(&rec, j.number)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (j job) run() error {
	rec, err := j.record()
	if err != nil {
		return err
	}
	if j.logger != nil {
		j.logger.Printf("%d segments, extent %v", rec.Segments(), rec.Extent())
	}

	cfg, style := j.cfg, j.cfg.Style
	stroke, _ := config.ParseColor(style.Stroke) // validated by the config
	background, _ := config.ParseColor(style.Background)
	label, _ := config.ParseColor(style.Label)
	rasterOpts := svgraster.Options{
		LineWidth:  style.LineWidth,
		Margin:     style.Margin,
		Stroke:     stroke,
		Background: background,
		LabelColor: label,
		YUp:        !cfg.YDown,
	}

	switch cfg.Backend {
	case config.BackendPNG:
		pen := svgraster.NewPen(rec.Extent(), rasterOpts)
		if err := rec.Replay(pen); err != nil {
			return err
		}
		if err := pen.SavePNG(cfg.OutputPath()); err != nil {
			return err
		}
	case config.BackendPDF:
		pen := svgpdf.NewPen(rec.Extent(), svgpdf.Options{
			LineWidth:  style.LineWidth,
			Margin:     style.Margin,
			Stroke:     [3]int{int(stroke.R), int(stroke.G), int(stroke.B)},
			LabelColor: [3]int{int(label.R), int(label.G), int(label.B)},
			FontSize:   svgpdf.DefaultOptions.FontSize,
			YUp:        !cfg.YDown,
		})
		if err := rec.Replay(pen); err != nil {
			return err
		}
		if err := pen.Save(cfg.OutputPath()); err != nil {
			return err
		}
	case config.BackendTerm:
		pen := termdraw.NewPen(rec.Extent(), termdraw.Options{
			Cell: style.TermCell,
			Ink:  []rune(style.TermInk)[0],
			YUp:  !cfg.YDown,
		})
		if err := rec.Replay(pen); err != nil {
			return err
		}
		_, err := fmt.Fprintln(j.out, pen.Render(j.title()))
		return err
	case config.BackendWindow:
		return window.Run(rec, window.Options{Title: j.title(), Speed: cfg.Speed, Pen: rasterOpts})
	default:
		return fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	if j.logger != nil {
		j.logger.Printf("written %s", cfg.OutputPath())
	}
	return nil
}
