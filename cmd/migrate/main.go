package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"partner-commission-ledger/config"
	pgStorage "partner-commission-ledger/internal/adapter/storage/postgres"
	"partner-commission-ledger/pkg/logger"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up|down|status|version|redo|reset|validate")
	configPath := flag.String("config", "", "path to config file (defaults to ./config.yaml)")
	flag.Parse()

	if *cmd == "validate" {
		if err := pgStorage.ValidateMigrations(); err != nil {
			fmt.Fprintf(os.Stderr, "migration validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("migration validation passed")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log, "migrate")

	if err := pgStorage.Migrate(context.Background(), cfg.Database.DSN(), *cmd, flag.Args()...); err != nil {
		log.Fatal().Err(err).Str("cmd", *cmd).Msg("Migration failed")
	}
	log.Info().Str("cmd", *cmd).Msg("Migration complete")
}
