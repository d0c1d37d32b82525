package input

import (
	"regexp"
	"strconv"
)

// Quick commands address a rendered row directly: digits are the
// 1-based display position, the trailing letter picks the operation.
// The pattern is anchored to the whole line.
var quickRE = regexp.MustCompile(`^([0-9]+)([a-zA-Z])$`)

const (
	LetterCrossOut = 'd'
	LetterRemove   = 'r'
)

type QuickCommand struct {
	Position int
	Letter   rune
}

func ParseQuick(line string) (QuickCommand, bool) {
	m := quickRE.FindStringSubmatch(line)
	if m == nil {
		return QuickCommand{}, false
	}
	pos, err := strconv.Atoi(m[1])
	if err != nil {
		return QuickCommand{}, false
	}
	return QuickCommand{Position: pos, Letter: rune(m[2][0])}, true
}
