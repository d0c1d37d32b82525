package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jpcarrera/NaturalReminder/internal/config"
	"github.com/jpcarrera/NaturalReminder/internal/input"
	"github.com/jpcarrera/NaturalReminder/internal/nldate"
	"github.com/jpcarrera/NaturalReminder/internal/reminders"
	"github.com/jpcarrera/NaturalReminder/internal/scheduler"
	"github.com/jpcarrera/NaturalReminder/internal/storage"
	"github.com/jpcarrera/NaturalReminder/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "naturalreminder failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := os.Getenv("NATURALREMINDER_CONFIG")
	if cfgPath == "" {
		cfgPath = config.GetDefaultConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.LogPath())
	if err != nil {
		return err
	}
	defer closeLog()

	store := storage.NewStore(cfg.StorePath())
	items, err := store.Load()
	if err != nil {
		return err
	}

	list := reminders.NewCollection(store, logger)
	list.Replace(items)

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()

	var notifier scheduler.Notifier = scheduler.NoopNotifier{}
	if cfg.DesktopNotifications {
		notifier = scheduler.ExecNotifier{}
	}
	alerts := scheduler.NewAlerts(engine, list, notifier, scheduler.Config{
		DiscardOnDismiss: cfg.RemoveNotificationWhenDismissed,
		DismissSnooze:    time.Duration(cfg.SnoozeNotificationWhenDismissed) * time.Minute,
	}, logger)
	alerts.RescheduleAll(list.All())

	interp := input.NewInterpreter(nldate.NewWhenParser(), list, alerts)

	program := tea.NewProgram(update.NewModel(update.Deps{
		Config:      cfg,
		ConfigPath:  cfgPath,
		List:        list,
		Alerts:      alerts,
		Engine:      engine,
		Interpreter: interp,
	}))
	_, err = program.Run()
	return err
}

func openLogger(path string) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, nil))
	return logger, func() { f.Close() }, nil
}
