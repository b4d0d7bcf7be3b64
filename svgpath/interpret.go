package svgpath

import "seehuhn.de/go/geom/vec"

// cursor is the state of one interpretation pass
type cursor struct {
	current vec.Vec2 // current point
	start   vec.Vec2 // start of the current subpath, used by z/Z
	started bool     // a move command has been seen
}

// target resolves the point (x, y), relative or absolute
func (c cursor) target(relative bool, x, y float64) vec.Vec2 {
	if relative {
		return vec.Vec2{X: c.current.X + x, Y: c.current.Y + y}
	}
	return vec.Vec2{X: x, Y: y}
}

// Interpret executes the commands and returns the
// resulting operations, in glyph-local coordinates.
//
// Additional coordinate pairs following a move command are
// treated as implicit line commands, relative for 'm' and absolute for 'M'.
// The close command draws a line back to the start of the subpath.
// A drawing command before any move command returns a *SequenceError.
func Interpret(cmds []Command) (Path, error) {
	var (
		c    cursor
		path Path
	)
	for i, cmd := range cmds {
		if reason := cmd.check(); reason != "" {
			return nil, &ParseError{Input: cmd.String(), Reason: reason}
		}
		letter := cmd.lower()
		if !c.started && letter != 'm' {
			return nil, &SequenceError{Letter: cmd.Letter, Index: i}
		}
		rel, args := cmd.IsRelative(), cmd.Args
		switch letter {
		case 'm':
			for j := 0; j < len(args); j += 2 {
				c.current = c.target(rel, args[j], args[j+1])
				if j == 0 {
					c.start = c.current
					c.started = true
					path.Start(c.current)
				} else {
					path.Line(c.current)
				}
			}
		case 'l':
			for j := 0; j < len(args); j += 2 {
				c.current = c.target(rel, args[j], args[j+1])
				path.Line(c.current)
			}
		case 'h':
			for _, x := range args {
				if rel {
					x += c.current.X
				}
				c.current.X = x
				path.Line(c.current)
			}
		case 'v':
			for _, y := range args {
				if rel {
					y += c.current.Y
				}
				c.current.Y = y
				path.Line(c.current)
			}
		case 'z':
			c.current = c.start
			path.Line(c.current)
		}
	}
	return path, nil
}

// ParsePath tokenizes and interprets the path description `d`.
func ParsePath(d string) (Path, error) {
	cmds, err := Tokenize(d)
	if err != nil {
		return nil, err
	}
	return Interpret(cmds)
}
