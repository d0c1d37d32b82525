package update

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jpcarrera/NaturalReminder/internal/config"
	"github.com/jpcarrera/NaturalReminder/internal/scheduler"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, tickCmd()}
	if m.engine != nil {
		cmds = append(cmds, waitForAlertCmd(m.engine.C()))
	}
	if m.list != nil {
		cmds = append(cmds, waitForSaveErrCmd(m.list.Errs()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.field.Width = typed.Width - 4
		return m, nil

	case TickMsg:
		m.now = time.Time(typed)
		return m, tickCmd()

	case AlertDeliveredMsg:
		d := typed.Delivery
		// A delivery that arrives while another alert is still on screen
		// displaces it; the displaced one gets the dismissal policy so it
		// is never left dangling in the delivered state.
		if m.activeAlert != nil && m.activeAlert.ID != d.ID {
			m.alerts.Apply(m.activeAlert.ID, scheduler.Dismiss())
		}
		m.alerts.Deliver(d)
		m.activeAlert = &d
		m.snoozeOpen = false
		m.snoozeIdx = 0
		return m, waitForAlertCmd(m.engine.C())

	case SaveErrorMsg:
		m.status = StatusBar{Text: fmt.Sprintf("save failed: %v", typed.Err), IsError: true}
		return m, waitForSaveErrCmd(m.list.Errs())

	case tea.KeyMsg:
		return m.handleKey(typed)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.activeAlert != nil {
		return m.handleAlertKey(key), nil
	}
	if m.settingsVisible {
		return m.handleSettingsKey(key), nil
	}
	if m.helpVisible {
		if key == "esc" || key == "ctrl+g" {
			m.helpVisible = false
		}
		return m, nil
	}

	switch key {
	case "ctrl+s":
		m.settingsVisible = true
		m.settingsCursor = 0
		return m, nil
	case "ctrl+g":
		m.helpVisible = true
		return m, nil
	case "enter":
		out := m.interp.Submit(m.field.Value())
		m.status = statusForOutcome(out)
		m.field.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

// handleAlertKey drives the delivered-alert overlay: done, the snooze
// menu, or dismissal under the configured default policy.
func (m Model) handleAlertKey(key string) Model {
	id := m.activeAlert.ID

	if m.snoozeOpen {
		menu := m.cfg.SnoozeMenuMinutes
		switch key {
		case "up", "k":
			if m.snoozeIdx > 0 {
				m.snoozeIdx--
			}
		case "down", "j":
			if m.snoozeIdx < len(menu)-1 {
				m.snoozeIdx++
			}
		case "enter":
			minutes := menu[m.snoozeIdx]
			m.alerts.Apply(id, scheduler.SnoozeFor(time.Duration(minutes)*time.Minute))
			m.status = StatusBar{Text: fmt.Sprintf("snoozed for %s", scheduler.SnoozeLabel(minutes))}
			m.activeAlert = nil
			m.snoozeOpen = false
		case "esc":
			m.snoozeOpen = false
		}
		return m
	}

	switch key {
	case "d":
		m.alerts.Apply(id, scheduler.Done())
		m.status = StatusBar{Text: "marked done"}
		m.activeAlert = nil
	case "s":
		m.snoozeOpen = true
		m.snoozeIdx = 0
	case "esc":
		m.alerts.Apply(id, scheduler.Dismiss())
		if m.cfg.RemoveNotificationWhenDismissed {
			m.status = StatusBar{Text: "dismissed"}
		} else {
			m.status = StatusBar{Text: fmt.Sprintf("dismissed, snoozed %d min", m.cfg.SnoozeNotificationWhenDismissed)}
		}
		m.activeAlert = nil
	}
	return m
}

func (m Model) handleSettingsKey(key string) Model {
	switch key {
	case "up", "k":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case "down", "j":
		if m.settingsCursor < 2 {
			m.settingsCursor++
		}
	case " ", "enter":
		switch m.settingsCursor {
		case 0:
			m.cfg.DarkMode = !m.cfg.DarkMode
		case 1:
			m.cfg.RemoveNotificationWhenDismissed = !m.cfg.RemoveNotificationWhenDismissed
		}
	case "left", "h":
		if m.settingsCursor == 2 && m.cfg.SnoozeNotificationWhenDismissed > 1 {
			m.cfg.SnoozeNotificationWhenDismissed--
		}
	case "right", "l":
		if m.settingsCursor == 2 {
			m.cfg.SnoozeNotificationWhenDismissed++
		}
	case "esc":
		m.settingsVisible = false
		m.applySettings()
	}
	return m
}

// applySettings pushes the edited policy into the scheduler and writes
// the config file back.
func (m *Model) applySettings() {
	m.alerts.SetConfig(scheduler.Config{
		DiscardOnDismiss: m.cfg.RemoveNotificationWhenDismissed,
		DismissSnooze:    time.Duration(m.cfg.SnoozeNotificationWhenDismissed) * time.Minute,
	})
	if m.cfgPath == "" {
		return
	}
	if err := config.Save(m.cfgPath, m.cfg); err != nil {
		m.status = StatusBar{Text: fmt.Sprintf("save settings failed: %v", err), IsError: true}
	}
}
