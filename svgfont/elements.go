package svgfont

import (
	"encoding/xml"
	"errors"
	"log"

	"github.com/benoitkugler/hexturtle/svgpath"
)

// ErrorMode is the for setting how the parser reacts to unsupported elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported elements silently
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for each unsupported element
	WarnErrorMode
	// StrictErrorMode returns an error on the first unsupported element
	StrictErrorMode
)

var errParamMismatch = errors.New("svgfont: param mismatch")

type svgFunc func(c *glyphCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":   svgF,
	"g":     gF,
	"path":  pathF,
	"title": titleF,
	"desc":  skipF,
	// metadata written by common editors, never drawn
	"metadata":  skipF,
	"namedview": skipF,
	"defs":      skipF,
}

func (c *glyphCursor) readStartElement(se xml.StartElement) error {
	if c.skipDepth > 0 {
		c.skipDepth++
		return nil
	}
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		c.skipDepth = 1 // children of an unsupported element are skipped too
		errStr := "Cannot process svg element " + se.Name.Local
		if c.errorMode == StrictErrorMode {
			return errors.New(errStr)
		} else if c.errorMode == WarnErrorMode {
			log.Println(errStr)
		}
		return nil
	}
	return df(c, se.Attr)
}

func svgF(c *glyphCursor, attrs []xml.Attr) error {
	c.glyph.ViewBox = Bounds{}
	var width, height float64
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "viewBox":
			points, errp := svgpath.ParseNumbers(attr.Value)
			if errp != nil {
				return errp
			}
			if len(points) != 4 {
				return errParamMismatch
			}
			c.glyph.ViewBox = Bounds{X: points[0], Y: points[1], W: points[2], H: points[3]}
		case "width":
			width, err = parseLength(attr.Value)
		case "height":
			height, err = parseLength(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if c.glyph.ViewBox.W == 0 {
		c.glyph.ViewBox.W = width
	}
	if c.glyph.ViewBox.H == 0 {
		c.glyph.ViewBox.H = height
	}
	return nil
}

// parseLength reads a width or height attribute,
// accepting a trailing "px" unit
func parseLength(v string) (float64, error) {
	if n := len(v); n > 2 && v[n-2:] == "px" {
		v = v[:n-2]
	}
	points, err := svgpath.ParseNumbers(v)
	if err != nil {
		return 0, err
	}
	if len(points) != 1 {
		return 0, errParamMismatch
	}
	return points[0], nil
}

func gF(*glyphCursor, []xml.Attr) error { return nil } // groups are transparent, transform attributes are not supported

func pathF(c *glyphCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "d" {
			continue // style and transform are ignored
		}
		path, err := svgpath.ParsePath(attr.Value)
		if err != nil {
			return err
		}
		if len(path) > 0 {
			c.glyph.Paths = append(c.glyph.Paths, path)
		}
	}
	return nil
}

func titleF(c *glyphCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.glyph.Titles = append(c.glyph.Titles, "")
	return nil
}

func skipF(c *glyphCursor, attrs []xml.Attr) error {
	c.skipDepth = 1
	return nil
}
