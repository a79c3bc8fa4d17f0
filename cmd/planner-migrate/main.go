// Command planner-migrate applies or inspects the embedded goose migrations.
//
// Usage: planner-migrate [up|down|status]   (default: up)
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/kikiarya/hsc-planner/internal/adapter/postgres"
	"github.com/kikiarya/hsc-planner/internal/app"
	"github.com/kikiarya/hsc-planner/internal/config"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	switch command {
	case "up", "down", "status":
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [up|down|status]\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	m, err := postgres.NewMigrator(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("open migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer m.Close() //nolint:errcheck

	if err := run(ctx, m, command, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		m.Close() //nolint:errcheck
		os.Exit(1)
	}
}

func run(ctx context.Context, m *postgres.Migrator, command string, logger *slog.Logger) error {
	switch command {
	case "down":
		if err := m.Down(ctx); err != nil {
			return err
		}
		logger.Info("rolled back one migration")
	case "status":
		states, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range states {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("%05d  %-8s  %s\n", s.Version, state, s.Source)
		}
	default:
		applied, err := m.Up(ctx)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}
	return nil
}
