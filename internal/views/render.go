package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// theme is one full style palette. The dark_mode setting picks which
// one every render function uses.
type theme struct {
	index     lipgloss.Style
	text      lipgloss.Style
	crossed   lipgloss.Style
	countdown lipgloss.Style
	missed    lipgloss.Style
	when      lipgloss.Style
	status    lipgloss.Style
	errText   lipgloss.Style
	divider   lipgloss.Style
	panel     lipgloss.Style
	empty     lipgloss.Style
	title     lipgloss.Style
	glamour   string
}

var darkTheme = theme{
	index:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(4),
	text:      lipgloss.NewStyle(),
	crossed:   lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8")),
	countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	missed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	when:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	status:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	errText:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	divider:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	glamour:   "dark",
}

var lightTheme = theme{
	index:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(4),
	text:      lipgloss.NewStyle(),
	crossed:   lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("240")),
	countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	missed:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	when:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	status:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	errText:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	divider:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
	glamour:   "light",
}

func themeFor(dark bool) theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}

// Row is one rendered reminder line.
type Row struct {
	Index      int
	Text       string
	Countdown  string
	When       string
	CrossedOut bool
}

type AppData struct {
	Rows      []Row
	Status    string
	IsError   bool
	InputView string
	Width     int
	DarkMode  bool
}

func RenderApp(data AppData) string {
	th := themeFor(data.DarkMode)
	width := data.Width
	if width <= 0 {
		width = 60
	}

	var lines []string
	if len(data.Rows) == 0 {
		lines = append(lines, th.empty.Render("Nothing to remember. Type a reminder below."))
	}
	for i, row := range data.Rows {
		lines = append(lines, renderRow(th, row))
		if !row.CrossedOut && i < len(data.Rows)-1 {
			lines = append(lines, th.divider.Render(strings.Repeat("─", width)))
		}
	}

	status := th.status.Render(data.Status)
	if data.IsError {
		status = th.errText.Render(data.Status)
	}

	out := []string{strings.Join(lines, "\n"), ""}
	if data.Status != "" {
		out = append(out, status)
	}
	out = append(out, th.divider.Render(strings.Repeat("─", width)), data.InputView)
	return strings.Join(out, "\n")
}

func renderRow(th theme, row Row) string {
	index := th.index.Render(fmt.Sprintf("%d.", row.Index))
	text := th.text.Render(row.Text)
	if row.CrossedOut {
		text = th.crossed.Render(row.Text)
	}

	meta := ""
	if row.Countdown != "" {
		style := th.countdown
		if row.Countdown == "Missed" {
			style = th.missed
		}
		meta = "  " + style.Render(row.Countdown) + " " + th.when.Render("("+row.When+")")
	}
	return index + text + meta
}

// AlertData is the delivered-alert overlay with its action menu.
type AlertData struct {
	Title       string
	SnoozeOpen  bool
	SnoozeItems []string
	SnoozeIdx   int
	DarkMode    bool
}

func RenderAlert(data AlertData) string {
	th := themeFor(data.DarkMode)
	var b strings.Builder
	b.WriteString(th.title.Render("Reminder: " + data.Title))
	b.WriteString("\n\n")
	if data.SnoozeOpen {
		for i, label := range data.SnoozeItems {
			cursor := "  "
			if i == data.SnoozeIdx {
				cursor = "> "
			}
			b.WriteString(cursor + "Snooze " + label + "\n")
		}
		b.WriteString("\nenter snooze · esc back")
	} else {
		b.WriteString("d done · s snooze · esc dismiss")
	}
	return th.panel.Render(b.String())
}

// SettingsData is the settings panel.
type SettingsData struct {
	Cursor          int
	DarkMode        bool
	RemoveDismissed bool
	DismissSnooze   int
}

func RenderSettings(data SettingsData) string {
	th := themeFor(data.DarkMode)
	rows := []string{
		fmt.Sprintf("Dark mode: %s", onOff(data.DarkMode)),
		fmt.Sprintf("Remove notification when dismissed: %s", onOff(data.RemoveDismissed)),
		fmt.Sprintf("Snooze dismissed notifications by: %d min", data.DismissSnooze),
	}
	var b strings.Builder
	b.WriteString(th.title.Render("Settings"))
	b.WriteString("\n\n")
	for i, row := range rows {
		cursor := "  "
		if i == data.Cursor {
			cursor = "> "
		}
		b.WriteString(cursor + row + "\n")
	}
	b.WriteString("\nspace toggle · ←/→ adjust · esc close")
	return th.panel.Render(b.String())
}

const helpMarkdown = "# NaturalReminder\n\n" +
	"Type a reminder and press enter. A date inside the text " +
	"(\"call mom tomorrow at 3pm\") becomes the alert time.\n\n" +
	"## Quick commands\n\n" +
	"- `<n>d` cross out row n\n" +
	"- `<n>r` remove row n\n\n" +
	"## Keys\n\n" +
	"- `ctrl+s` settings\n" +
	"- `ctrl+g` help\n" +
	"- `ctrl+c` quit\n"

func RenderHelp(dark bool) string {
	th := themeFor(dark)
	out, err := glamour.Render(helpMarkdown, th.glamour)
	if err != nil {
		return helpMarkdown
	}
	return th.panel.Render(strings.TrimSpace(out))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
