package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/config"
	"github.com/diegoclair/slack-shift-bot/internal/database"
	"github.com/diegoclair/slack-shift-bot/internal/domain/service"
	"github.com/diegoclair/slack-shift-bot/internal/handlers"
	"github.com/diegoclair/slack-shift-bot/internal/logger"
	"github.com/diegoclair/slack-shift-bot/internal/slackops"
	"github.com/diegoclair/slack-shift-bot/migrator/sqlite"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("bot stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	slackClient := slack.New(cfg.SlackBotToken)

	services := service.NewInstance(
		database.NewInstance(db),
		slackops.NewRoleSync(slackClient, log.Named("roles")),
		slackops.NewNotifier(slackClient),
		log,
		service.Options{
			CheckInterval:     cfg.CheckInterval,
			SideEffectTimeout: cfg.SideEffectTimeout,
			SweepConcurrency:  cfg.SweepConcurrency,
		},
	)

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(services.Staff, cfg.SlackSigningSecret, log.Named("handlers"))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("POST /slack/events", handler.HandleEvents)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, "database unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
