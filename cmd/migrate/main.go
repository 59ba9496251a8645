package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/config"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/logging"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
	"github.com/kyrhyl/cost-estimate-application-sub000/migrations"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  up (default)  apply all pending migrations
  down          roll back the latest migration
  status        print the state of every migration
  reset         roll back all migrations`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	cmd := migrations.CommandUp
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case migrations.CommandUp, migrations.CommandDown, migrations.CommandStatus, migrations.CommandReset:
	default:
		usage()
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := migrations.Run(ctx, db, cmd); err != nil {
		logging.Fatal("migration failed", "command", cmd, "error", err)
	}
	slog.Info("migration finished", "command", cmd)
}
