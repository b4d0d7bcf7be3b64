package svgpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one path command letter with its arguments,
// as found in the path data.
// Lower case letters are relative to the current point,
// upper case letters are absolute.
type Command struct {
	Letter byte
	Args   []float64
}

// Commands is a tokenized path description.
type Commands []Command

// arity returns the number of arguments consumed
// by one repetition of the command.
func arity(letter byte) (int, bool) {
	switch letter {
	case 'm', 'M', 'l', 'L':
		return 2, true
	case 'h', 'H', 'v', 'V':
		return 1, true
	case 'z', 'Z':
		return 0, true
	default:
		return 0, false
	}
}

// IsRelative returns true for lower case commands.
func (c Command) IsRelative() bool { return 'a' <= c.Letter && c.Letter <= 'z' }

// lower returns the lower case letter of the command
func (c Command) lower() byte {
	if c.IsRelative() {
		return c.Letter
	}
	return c.Letter + 'a' - 'A'
}

// check returns a non empty reason if the command
// is not supported or has the wrong number of arguments.
func (c Command) check() string {
	n, ok := arity(c.Letter)
	if !ok {
		return fmt.Sprintf("unsupported command %q", c.Letter)
	}
	if n == 0 {
		if len(c.Args) != 0 {
			return fmt.Sprintf("command %q takes no argument, got %d", c.Letter, len(c.Args))
		}
		return ""
	}
	if len(c.Args) == 0 || len(c.Args)%n != 0 {
		return fmt.Sprintf("command %q expects arguments by groups of %d, got %d", c.Letter, n, len(c.Args))
	}
	return ""
}

// String returns the command letter followed by its
// arguments, separated by a single space.
func (c Command) String() string {
	var sb strings.Builder
	sb.WriteByte(c.Letter)
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
	}
	return sb.String()
}

// String serializes the commands so that
// Tokenize(cs.String()) returns cs.
func (cs Commands) String() string {
	chunks := make([]string, len(cs))
	for i, c := range cs {
		chunks[i] = c.String()
	}
	return strings.Join(chunks, " ")
}
