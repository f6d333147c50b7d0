// Command migrate applies pending schema migrations and prints the ledger.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"orderdesk/cmd"
	"orderdesk/internal/adapters/out/gormdb"
	"orderdesk/internal/adapters/out/gormdb/migrations"
	"orderdesk/internal/logger"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
)

func main() {
	statusOnly := flag.Bool("status", false, "print the migration state without applying anything")
	flag.Parse()

	configs, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Init(configs.Server.Mode, configs.Log.ToLoggerOptions())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, configs, *statusOnly, log)
	stop()
	_ = log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configs cmd.Config, statusOnly bool, log *zap.Logger) error {
	db, err := gormdb.Open(configs.Database.ToGormOptions(), log.Named("gorm"))
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	app := cmd.NewCompositionRoot(configs, db, log)
	engine := app.CreateMigrationEngine()

	var applied []string
	if !statusOnly {
		if applied, err = engine.ApplyPending(ctx); err != nil {
			return err
		}
	}

	state, err := engine.State(ctx)
	if err != nil {
		return err
	}
	return printState(os.Stdout, configs.Database.Driver, state, applied)
}

func printState(w io.Writer, driver string, state migrations.State, justApplied []string) error {
	fresh := make(map[string]bool, len(justApplied))
	for _, id := range justApplied {
		fresh[id] = true
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Migration", "State"})
	for _, id := range state.Applied {
		status := "applied"
		if fresh[id] {
			status = "applied now"
		}
		if err := table.Append([]string{id, status}); err != nil {
			return err
		}
	}
	for _, id := range state.Pending {
		if err := table.Append([]string{id, "pending"}); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "driver: %s\n", driver)
	return table.Render()
}
