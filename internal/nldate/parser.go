package nldate

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Match is one recognized date reference inside free-form text.
type Match struct {
	// Text is the exact substring that carried the date.
	Text string
	// Index is the byte offset of Text in the input.
	Index int
	// Time is the resolved absolute point in time.
	Time time.Time
}

// Parser extracts a natural-language date reference from text. Only the
// first candidate is used.
type Parser interface {
	Parse(text string, base time.Time) (Match, bool)
}

// WhenParser backs Parser with olebedev/when English rules.
type WhenParser struct {
	w *when.Parser
}

func NewWhenParser() *WhenParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &WhenParser{w: w}
}

func (p *WhenParser) Parse(text string, base time.Time) (Match, bool) {
	r, err := p.w.Parse(text, base)
	if err != nil || r == nil {
		return Match{}, false
	}
	return Match{Text: r.Text, Index: r.Index, Time: r.Time}, true
}
