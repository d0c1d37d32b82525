package input

import (
	"strings"
	"time"

	"github.com/jpcarrera/NaturalReminder/internal/model"
	"github.com/jpcarrera/NaturalReminder/internal/nldate"
	"github.com/jpcarrera/NaturalReminder/internal/reminders"
	"github.com/jpcarrera/NaturalReminder/internal/scheduler"
)

type OutcomeKind string

const (
	OutcomeNone       OutcomeKind = "none"
	OutcomeAdded      OutcomeKind = "added"
	OutcomeCrossedOut OutcomeKind = "crossed_out"
	OutcomeRemoved    OutcomeKind = "removed"
)

// Outcome reports what a submitted line did, for the status bar.
type Outcome struct {
	Kind OutcomeKind
	Item model.Item
}

// Interpreter routes each submitted line: a quick command acts on the
// rendered list, a date-bearing sentence becomes a dated reminder, and
// anything else is stored verbatim as a dateless one.
type Interpreter struct {
	dates  nldate.Parser
	list   *reminders.Collection
	alerts *scheduler.Alerts
	clock  func() time.Time
}

func NewInterpreter(dates nldate.Parser, list *reminders.Collection, alerts *scheduler.Alerts) *Interpreter {
	return &Interpreter{dates: dates, list: list, alerts: alerts, clock: time.Now}
}

// SetClock replaces the time source; tests use it to pin "now".
func (in *Interpreter) SetClock(clock func() time.Time) {
	in.clock = clock
}

func (in *Interpreter) Submit(line string) Outcome {
	if strings.TrimSpace(line) == "" {
		return Outcome{Kind: OutcomeNone}
	}

	if cmd, ok := ParseQuick(line); ok {
		return in.runQuick(cmd)
	}

	if m, ok := in.dates.Parse(line, in.clock()); ok {
		return in.addDated(line, m)
	}

	it := model.NewItem(line)
	in.list.Add(it)
	return Outcome{Kind: OutcomeAdded, Item: it}
}

// runQuick executes a quick command. A stale or out-of-range position
// is a silent no-op, and so is any letter without a meaning.
func (in *Interpreter) runQuick(cmd QuickCommand) Outcome {
	switch cmd.Letter {
	case LetterCrossOut:
		it, ok := in.list.CrossOutByPosition(cmd.Position)
		if !ok {
			return Outcome{Kind: OutcomeNone}
		}
		in.alerts.Sync(it)
		return Outcome{Kind: OutcomeCrossedOut, Item: it}
	case LetterRemove:
		it, ok := in.list.RemoveByPosition(cmd.Position)
		if !ok {
			return Outcome{Kind: OutcomeNone}
		}
		in.alerts.Drop(it.ID)
		return Outcome{Kind: OutcomeRemoved, Item: it}
	default:
		return Outcome{Kind: OutcomeNone}
	}
}

// addDated strips the matched span out of the line, keeps the span
// itself as the text when nothing else remains, and arms the alert.
func (in *Interpreter) addDated(line string, m nldate.Match) Outcome {
	text := stripSpan(line, m)
	text = strings.TrimSpace(collapseSpaces(text))
	if text == "" {
		text = m.Text
	}

	it := model.NewDatedItem(text, m.Time)
	in.list.Add(it)
	in.alerts.Sync(it)
	return Outcome{Kind: OutcomeAdded, Item: it}
}

// stripSpan cuts the matched span at its reported offset, so a phrase
// that also appears earlier in the line is left alone.
func stripSpan(line string, m nldate.Match) string {
	end := m.Index + len(m.Text)
	if m.Index >= 0 && end <= len(line) && line[m.Index:end] == m.Text {
		return line[:m.Index] + line[end:]
	}
	return strings.Replace(line, m.Text, "", 1)
}

func collapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}
