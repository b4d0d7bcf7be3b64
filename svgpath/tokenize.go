package svgpath

import (
	"strconv"
	"strings"
)

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isExponent(c byte) bool { return c == 'e' || c == 'E' }

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', ',':
		return true
	}
	return false
}

// Tokenize splits the path description `d` into commands.
// Everything between one command letter and the next one is read
// as the list of numeric arguments of the first one.
//
// Numbers are separated by white space or commas, and a new number also
// starts at a sign following an unsigned number ("1-2" is 1, -2) and at a
// second decimal point ("0.5.5" is 0.5, .5).
// A signed number directly following another signed number ("-1-2")
// can't be split and is rejected.
func Tokenize(d string) (Commands, error) {
	var cmds Commands
	lastIndex := -1
	for i := 0; i < len(d); i++ {
		c := d[i]
		if !isLetter(c) || isExponent(c) {
			continue
		}
		if lastIndex != -1 {
			cmd, err := readCommand(d, lastIndex, i)
			if err != nil {
				return nil, err
			}
			cmds = append(cmds, cmd)
		} else if strings.TrimSpace(d[:i]) != "" {
			return nil, &ParseError{Input: d, Offset: 0, Reason: "path data must start with a command"}
		}
		lastIndex = i
	}
	if lastIndex == -1 {
		if strings.TrimSpace(d) != "" {
			return nil, &ParseError{Input: d, Offset: 0, Reason: "no command found"}
		}
		return nil, nil
	}
	cmd, err := readCommand(d, lastIndex, len(d))
	if err != nil {
		return nil, err
	}
	return append(cmds, cmd), nil
}

// readCommand reads the command starting at d[start] and
// ending before d[end]
func readCommand(d string, start, end int) (Command, error) {
	cmd := Command{Letter: d[start]}
	if _, ok := arity(cmd.Letter); !ok {
		return cmd, &ParseError{Input: d, Offset: start, Reason: cmd.check()}
	}
	var err error
	cmd.Args, err = readNumbers(d, start+1, end)
	if err != nil {
		return cmd, err
	}
	if reason := cmd.check(); reason != "" {
		return cmd, &ParseError{Input: d, Offset: start, Reason: reason}
	}
	return cmd, nil
}

// ParseNumbers reads a list of numbers, with the
// same splitting rules as path arguments.
// It is also used for attributes like viewBox.
func ParseNumbers(s string) ([]float64, error) {
	return readNumbers(s, 0, len(s))
}

// numberScanner accumulates the numbers of one argument list
type numberScanner struct {
	input  string
	points []float64

	start    int  // start of the current number, or -1
	signed   bool // the current number has a leading sign
	dot      bool // the current number has a decimal point
	exponent bool // the current number has an exponent
}

func (s *numberScanner) begin(i int) {
	s.start = i
	s.signed, s.dot, s.exponent = false, false, false
}

// readFloat parses the current number, if any
func (s *numberScanner) readFloat(end int) error {
	if s.start == -1 {
		return nil
	}
	numStr := s.input[s.start:end]
	f, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return &ParseError{Input: s.input, Offset: s.start, Reason: "invalid number " + strconv.Quote(numStr)}
	}
	s.points = append(s.points, f)
	s.start = -1
	return nil
}

func readNumbers(d string, start, end int) ([]float64, error) {
	s := numberScanner{input: d, start: -1}
	for i := start; i < end; i++ {
		c := d[i]
		switch {
		case isSeparator(c):
			if err := s.readFloat(i); err != nil {
				return nil, err
			}
		case c == '-' || c == '+':
			if s.start != -1 && isExponent(d[i-1]) {
				continue // sign of the exponent
			}
			if s.start != -1 && s.signed {
				return nil, &ParseError{
					Input: d, Offset: i,
					Reason: "a signed number can't directly follow a signed number, add a space or a comma",
				}
			}
			if err := s.readFloat(i); err != nil {
				return nil, err
			}
			s.begin(i)
			s.signed = true
		case c == '.':
			if s.start != -1 && (s.dot || s.exponent) {
				if err := s.readFloat(i); err != nil {
					return nil, err
				}
			}
			if s.start == -1 {
				s.begin(i)
			}
			s.dot = true
		case '0' <= c && c <= '9':
			if s.start == -1 {
				s.begin(i)
			}
		case isExponent(c):
			if s.start == -1 || s.exponent {
				return nil, &ParseError{Input: d, Offset: i, Reason: "misplaced exponent"}
			}
			s.exponent = true
		default:
			return nil, &ParseError{Input: d, Offset: i, Reason: "unexpected character " + strconv.QuoteRune(rune(c))}
		}
	}
	if err := s.readFloat(end); err != nil {
		return nil, err
	}
	return s.points, nil
}
