package update

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jpcarrera/NaturalReminder/internal/config"
	"github.com/jpcarrera/NaturalReminder/internal/input"
	"github.com/jpcarrera/NaturalReminder/internal/reminders"
	"github.com/jpcarrera/NaturalReminder/internal/scheduler"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type AlertDeliveredMsg struct {
	Delivery scheduler.Delivery
}

type SaveErrorMsg struct {
	Err error
}

type TickMsg time.Time

// Model is the bubbletea application state. All reminder mutations run
// inside Update, so UI edits and alert callbacks are serialized by the
// bubbletea loop on top of the locks the core packages already hold.
type Model struct {
	cfg     *config.Config
	cfgPath string

	list   *reminders.Collection
	alerts *scheduler.Alerts
	engine *scheduler.Engine
	interp *input.Interpreter

	field  textinput.Model
	now    time.Time
	width  int
	height int

	status          StatusBar
	helpVisible     bool
	settingsVisible bool
	settingsCursor  int

	activeAlert *scheduler.Delivery
	snoozeOpen  bool
	snoozeIdx   int

	quitting bool
}

type Deps struct {
	Config      *config.Config
	ConfigPath  string
	List        *reminders.Collection
	Alerts      *scheduler.Alerts
	Engine      *scheduler.Engine
	Interpreter *input.Interpreter
}

func NewModel(deps Deps) Model {
	field := textinput.New()
	field.Placeholder = "Type reminder here..."
	field.Prompt = "> "
	field.Focus()

	return Model{
		cfg:     deps.Config,
		cfgPath: deps.ConfigPath,
		list:    deps.List,
		alerts:  deps.Alerts,
		engine:  deps.Engine,
		interp:  deps.Interpreter,
		field:   field,
		now:     time.Now(),
	}
}

func waitForAlertCmd(ch <-chan scheduler.Delivery) tea.Cmd {
	return func() tea.Msg {
		d, ok := <-ch
		if !ok {
			return nil
		}
		return AlertDeliveredMsg{Delivery: d}
	}
}

func waitForSaveErrCmd(ch <-chan error) tea.Cmd {
	return func() tea.Msg {
		err, ok := <-ch
		if !ok {
			return nil
		}
		return SaveErrorMsg{Err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func statusForOutcome(out input.Outcome) StatusBar {
	switch out.Kind {
	case input.OutcomeAdded:
		if out.Item.HasDate() {
			return StatusBar{Text: fmt.Sprintf("added %q for %s", out.Item.Text, out.Item.Date.Format("02.01.06 15:04"))}
		}
		return StatusBar{Text: fmt.Sprintf("added %q", out.Item.Text)}
	case input.OutcomeCrossedOut:
		if out.Item.CrossedOut {
			return StatusBar{Text: fmt.Sprintf("crossed out %q", out.Item.Text)}
		}
		return StatusBar{Text: fmt.Sprintf("restored %q", out.Item.Text)}
	case input.OutcomeRemoved:
		return StatusBar{Text: fmt.Sprintf("removed %q", out.Item.Text)}
	default:
		return StatusBar{}
	}
}
