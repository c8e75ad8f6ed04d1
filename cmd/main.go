package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "runwalk_timer/docs"
	"runwalk_timer/internal/config"
	"runwalk_timer/internal/handlers"
	"runwalk_timer/internal/logger"
	"runwalk_timer/internal/notify"
	"runwalk_timer/internal/repository"
	"runwalk_timer/internal/repository/db"
	"runwalk_timer/internal/server"
	"runwalk_timer/internal/service"
)

const (
	hubBuffer       = 16
	shutdownTimeout = 10 * time.Second
)

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yml")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.LogLevel)

	// open DB
	sqlDB, err := openDB(cfg.DBPath, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies; the hub is both the display sink and the wake lock
	hub := notify.NewHub(hubBuffer, log)
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(context.Background(), repos, service.Deps{
		Scheduler: service.NewTickerScheduler(cfg.Tick),
		Sink:      hub,
		WakeLock:  hub,
		Defaults:  cfg.Defaults,
		Log:       log,
	})
	apiHandler := handlers.NewHandler(services, hub, log)

	// start HTTP server
	srv := server.New()
	runHTTPServer(srv, cfg.HTTP.Addr(), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, services, log)
}

// openDB initializes the SQLite database file.
func openDB(path string, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening sqlite", "path", path)
	return db.InitDB(path)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, addr string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(addr, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err, "addr", addr)
		}
	}()
	go func() {
		<-srv.Ready()
		log.Infow("server_listening", "addr", srv.Addr().String())
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, services *service.Service, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// stop ticks and save the timer before the listener goes away
	services.Shutdown(ctx)

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
