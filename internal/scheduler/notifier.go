package scheduler

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Notification is what gets shown on the desktop when an alert fires.
type Notification struct {
	Title string
	Body  string
}

type Notifier interface {
	Send(Notification) error
}

type NoopNotifier struct{}

func (NoopNotifier) Send(Notification) error { return nil }

// ExecNotifier shells out to the platform notification tool.
type ExecNotifier struct{}

func (ExecNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
