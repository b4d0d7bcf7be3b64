package svgpath

import "fmt"

// ParseError is returned for malformed path data: an unsupported
// command letter, an unexpected character, an invalid numeral
// or a wrong number of arguments.
type ParseError struct {
	Input  string // the path data (or the command) being parsed
	Offset int    // byte offset of the faulty token in Input
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("svgpath: invalid path data at offset %d in %q: %s", e.Offset, e.Input, e.Reason)
}

// SequenceError is returned when a drawing command
// is found before any move command has set the current point.
type SequenceError struct {
	Letter byte
	Index  int // index of the command in the sequence
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("svgpath: command %q (#%d) has no current point, the path must start with m or M", e.Letter, e.Index)
}
