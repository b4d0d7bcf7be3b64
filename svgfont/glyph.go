// Provides parsing of SVG font directories, where
// each glyph is stored in its own file, and described
// by one or more path elements using straight lines only.
package svgfont

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"github.com/benoitkugler/hexturtle/svgpath"
	"golang.org/x/net/html/charset"
)

// ErrNoPath is returned for a glyph file without any path element.
var ErrNoPath = errors.New("svgfont: glyph has no path element")

// Bounds defines a bounding box, such as a viewport
type Bounds struct{ X, Y, W, H float64 }

// Glyph holds data from a parsed glyph file.
type Glyph struct {
	Symbol  rune
	ViewBox Bounds
	Titles  []string // Title elements collect here

	// Paths are stored in document order, each
	// one in glyph-local coordinates.
	Paths []svgpath.Path
}

// glyphCursor is used while parsing SVG files
type glyphCursor struct {
	glyph       *Glyph
	errorMode   ErrorMode
	inTitleText bool
	skipDepth   int // > 0 inside an unsupported element
}

// ReadGlyphStream reads the glyph from the given io.Reader.
// Only the straight line subset of path data is supported: errMode determines if
// the parser ignores, errors out, or logs a warning when it finds other elements.
func ReadGlyphStream(stream io.Reader, errMode ErrorMode) (*Glyph, error) {
	glyph := &Glyph{}
	cursor := &glyphCursor{glyph: glyph, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("svgfont: invalid svg xml glyph")
				}
				break
			}
			return glyph, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if err = cursor.readStartElement(se); err != nil {
				return glyph, err
			}
		case xml.EndElement:
			if cursor.skipDepth > 0 {
				cursor.skipDepth--
				continue
			}
			if se.Name.Local == "title" {
				cursor.inTitleText = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				glyph.Titles[len(glyph.Titles)-1] += string(se)
			}
		}
	}
	if len(glyph.Paths) == 0 {
		return glyph, ErrNoPath
	}
	return glyph, nil
}

// ReadGlyph reads the glyph from the named file.
// See ReadGlyphStream for the meaning of errMode.
func ReadGlyph(glyphFile string, errMode ErrorMode) (*Glyph, error) {
	fin, errf := os.Open(glyphFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadGlyphStream(fin, errMode)
}
