package update

import (
	"github.com/jpcarrera/NaturalReminder/internal/model"
	"github.com/jpcarrera/NaturalReminder/internal/scheduler"
	"github.com/jpcarrera/NaturalReminder/internal/views"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.activeAlert != nil {
		labels := make([]string, len(m.cfg.SnoozeMenuMinutes))
		for i, minutes := range m.cfg.SnoozeMenuMinutes {
			labels[i] = scheduler.SnoozeLabel(minutes)
		}
		return views.RenderAlert(views.AlertData{
			Title:       m.activeAlert.Title,
			SnoozeOpen:  m.snoozeOpen,
			SnoozeItems: labels,
			SnoozeIdx:   m.snoozeIdx,
			DarkMode:    m.cfg.DarkMode,
		})
	}
	if m.settingsVisible {
		return views.RenderSettings(views.SettingsData{
			Cursor:          m.settingsCursor,
			DarkMode:        m.cfg.DarkMode,
			RemoveDismissed: m.cfg.RemoveNotificationWhenDismissed,
			DismissSnooze:   m.cfg.SnoozeNotificationWhenDismissed,
		})
	}
	if m.helpVisible {
		return views.RenderHelp(m.cfg.DarkMode)
	}

	sorted := m.list.Sorted()
	rows := make([]views.Row, 0, len(sorted))
	for i, it := range sorted {
		row := views.Row{
			Index:      i + 1,
			Text:       it.Text,
			CrossedOut: it.CrossedOut,
		}
		if it.Date != nil {
			row.Countdown = model.TimeLeft(m.now, *it.Date)
			row.When = model.FormatDate(*it.Date)
		}
		rows = append(rows, row)
	}

	return views.RenderApp(views.AppData{
		Rows:      rows,
		Status:    m.status.Text,
		IsError:   m.status.IsError,
		InputView: m.field.View(),
		Width:     m.width,
		DarkMode:  m.cfg.DarkMode,
	})
}
