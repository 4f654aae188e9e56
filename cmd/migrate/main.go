package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"pickup-service/internal/pkg/config"
	"pickup-service/internal/pkg/dotenv"
	"pickup-service/internal/pkg/postgres"
	"pickup-service/migrations"
	"pickup-service/pkg/logger"
	"pickup-service/pkg/logger/zap_adapter"
)

const usage = "usage: migrate [-env-file path] up|down|status|version"

func main() {
	err := dotenv.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		stdlog.Fatalf("failed to load environment: %v", err)
	}
	if flag.NArg() == 0 {
		stdlog.Fatal(usage)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var log logger.Logger = zapLogger
	command := flag.Arg(0)
	migrateLog := log.With(
		logger.NewField("command", command),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	err = run(ctx, command, flag.Args()[1:])
	if err != nil {
		migrateLog.Error("migration failed", logger.NewField("error", err))
		os.Exit(1)
	}
	migrateLog.Info("migration finished")
}

func run(ctx context.Context, command string, args []string) error {
	switch command {
	case "up", "down", "status", "version":
	default:
		return fmt.Errorf("unknown command %q, %s", command, usage)
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := sql.Open("pgx", postgres.DSN(cfg))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	err = goose.SetDialect("postgres")
	if err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	err = goose.RunContext(ctx, command, db, ".", args...)
	if err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
