package svgpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	for _, test := range []struct {
		d    string
		want Commands
	}{
		{"M0,0L10,0L10,10Z", Commands{
			{Letter: 'M', Args: []float64{0, 0}},
			{Letter: 'L', Args: []float64{10, 0}},
			{Letter: 'L', Args: []float64{10, 10}},
			{Letter: 'Z'},
		}},
		{"  m 1 2 3 4  z ", Commands{
			{Letter: 'm', Args: []float64{1, 2, 3, 4}},
			{Letter: 'z'},
		}},
		{"m1-2h-3v.5", Commands{
			{Letter: 'm', Args: []float64{1, -2}},
			{Letter: 'h', Args: []float64{-3}},
			{Letter: 'v', Args: []float64{0.5}},
		}},
		{"M0.5.5", Commands{{Letter: 'M', Args: []float64{0.5, 0.5}}}},
		{"M1e-2,3E+1", Commands{{Letter: 'M', Args: []float64{0.01, 30}}}},
		{"L-1,-2\n\t-3 -4", Commands{{Letter: 'L', Args: []float64{-1, -2, -3, -4}}}},
		{"M+1 2", Commands{{Letter: 'M', Args: []float64{1, 2}}}},
		{"", nil},
		{"   ", nil},
	} {
		got, err := Tokenize(test.d)
		if err != nil {
			t.Errorf("Tokenize(%q): %s", test.d, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Tokenize(%q) (-want +got):\n%s", test.d, diff)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, d := range []string{
		"M-1-2",       // two negative numbers without separator
		"M1,2 L+3-4",  // same with an explicit plus sign
		"Q1,2,3,4",    // curves are not supported
		"M1,2 A1 1 0 0 1 3 4",
		"M1",          // odd number of coordinates
		"L1,2,3",      // idem
		"H",           // missing argument
		"Z1",          // close takes no argument
		"M1,2#",       // unexpected character
		"10 M1,2",     // numbers before the first command
		"1 2 3",       // no command at all
		"M1e,2",       // incomplete exponent
		"M- 1,2",      // lonely sign
		"M1,2 L3,4é",  // non ascii
	} {
		_, err := Tokenize(d)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Tokenize(%q): expected a *ParseError, got %v", d, err)
		}
	}
}

func TestTokenizeErrorOffset(t *testing.T) {
	_, err := Tokenize("M0,0 L-1-2")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a *ParseError, got %v", err)
	}
	if pe.Offset != 8 {
		t.Errorf("expected offset 8, got %d", pe.Offset)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, d := range []string{
		"M0,0L10,0L10,10Z",
		"m2,2 h8 v16 h-8 z m0,8 h8",
		"M-1.5 -2.25 l1e-3-4 H1e21 V0.125",
		"M0.5.5.5.5",
	} {
		cmds, err := Tokenize(d)
		if err != nil {
			t.Fatal(err)
		}
		again, err := Tokenize(cmds.String())
		if err != nil {
			t.Fatalf("re-tokenizing %q: %s", cmds.String(), err)
		}
		if diff := cmp.Diff(cmds, again); diff != "" {
			t.Errorf("round trip of %q (-want +got):\n%s", d, diff)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	got, err := ParseNumbers("0 0 12,20")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{0, 0, 12, 20}, got); diff != "" {
		t.Error(diff)
	}
}
