package input

import "testing"

func TestParseQuickMatches(t *testing.T) {
	cases := []struct {
		in       string
		position int
		letter   rune
	}{
		{"1d", 1, 'd'},
		{"12r", 12, 'r'},
		{"3x", 3, 'x'},
		{"7D", 7, 'D'},
	}

	for _, tc := range cases {
		cmd, ok := ParseQuick(tc.in)
		if !ok {
			t.Fatalf("parse %q: expected a match", tc.in)
		}
		if cmd.Position != tc.position || cmd.Letter != tc.letter {
			t.Fatalf("parse %q = %+v, want position=%d letter=%q", tc.in, cmd, tc.position, tc.letter)
		}
	}
}

func TestParseQuickRejectsNonCommands(t *testing.T) {
	for _, in := range []string{"", "d", "1", "1dd", "d1", "1 d", "call mom 1d", "1d extra"} {
		if _, ok := ParseQuick(in); ok {
			t.Fatalf("parse %q: expected no match", in)
		}
	}
}
