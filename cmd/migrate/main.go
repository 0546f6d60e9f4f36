package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"bookstore/internal/config"
	"bookstore/internal/logger"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	cfg, err := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if *command == "create" {
		if *name == "" {
			log.Error("name is required for 'create' command")
			os.Exit(1)
		}
		goose.SetBaseFS(nil)
		if err := goose.Create(nil, createDir(), *name, "sql"); err != nil {
			log.Error("failed to create migration", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Migration created: %s\n", *name)
		return
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	fsys, dir := migrationSource()
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Error("failed to set dialect", "error", err)
		os.Exit(1)
	}

	switch *command {
	case "up":
		err = goose.UpContext(ctx, db, dir)
	case "down":
		err = goose.DownContext(ctx, db, dir)
	case "status":
		err = goose.StatusContext(ctx, db, dir)
	default:
		log.Error("unknown command, use: up, down, status, create", "command", *command)
		os.Exit(1)
	}
	if err != nil {
		log.Error("migration failed", "command", *command, "error", err)
		os.Exit(1)
	}
	log.Info("migration command finished", "command", *command, "dir", dir)
}
