package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"orderdesk/cmd"
	"orderdesk/internal/adapters/out/gormdb"
	"orderdesk/internal/logger"

	"go.uber.org/zap"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(configs.Server.Mode, configs.Log.ToLoggerOptions())
	if err := run(configs, log); err != nil {
		log.Error("server_stopped_with_error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(configs cmd.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := gormdb.Open(configs.Database.ToGormOptions(), log.Named("gorm"))
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	app := cmd.NewCompositionRoot(configs, db, log)

	applied, err := app.CreateMigrationEngine().ApplyPending(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	log.Info("migrations_done", zap.Strings("applied", applied))

	return startWebServer(ctx, app, configs.Server, log)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, server cmd.ServerConfig, log *zap.Logger) error {
	e := app.CreateEcho()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_starting",
			zap.String("addr", server.Addr()),
			zap.String("mode", server.Mode),
		)
		if err := e.Start(server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server_shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout())
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
