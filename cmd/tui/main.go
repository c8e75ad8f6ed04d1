package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"runwalk_timer/internal/config"
	"runwalk_timer/internal/logger"
	"runwalk_timer/internal/repository"
	"runwalk_timer/internal/repository/db"
	"runwalk_timer/internal/service"
	"runwalk_timer/internal/tui"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yml")
	logPath := flag.String("log", "runwalk-tui.log", "log file; the screen belongs to the UI")
	flag.Parse()

	if err := run(*configDir, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func run(configDir, logPath string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()
	log := logger.New(cfg.LogLevel, logFile)

	sqlDB, err := db.InitDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("init sqlite: %w", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// no wake lock: a terminal has no screen to keep on
	sink := tui.NewSink()
	services := service.NewService(context.Background(), repository.NewRepository(sqlDB), service.Deps{
		Scheduler: service.NewTickerScheduler(cfg.Tick),
		Sink:      sink,
		Defaults:  cfg.Defaults,
		Log:       log,
	})

	p := tea.NewProgram(tui.New(services, os.Stderr), tea.WithAltScreen())
	sink.Attach(p)

	_, runErr := p.Run()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	services.Shutdown(ctx)
	log.Infow("tui_exit")

	return runErr
}
