// Package main seeds the Postgres-backed ledger with deterministic test
// data, for deployments that do not seed on server startup.
package main

import (
	"context"
	"log"

	"kusuma/internal/config"
	"kusuma/internal/repositories"
	"kusuma/internal/seed"
)

func main() {
	config.LoadEnv()
	ctx := context.Background()

	db, err := repositories.InitPostgres()
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	ledger, err := repositories.NewGormLedger(db)
	if err != nil {
		log.Fatalf("Failed to init ledger: %v", err)
	}

	if err := ledger.Clear(ctx); err != nil {
		log.Fatalf("Failed to clear ledger: %v", err)
	}
	if err := seed.Run(ctx, ledger); err != nil {
		log.Fatalf("Failed to seed ledger: %v", err)
	}

	sellers, txns, err := ledger.Counts(ctx)
	if err != nil {
		log.Fatalf("Failed to count ledger records: %v", err)
	}
	log.Printf("[seed] done: %d sellers, %d transactions", sellers, txns)
}
