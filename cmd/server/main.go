// Package main is the entry point for the settlement service. It loads
// configuration, initializes the ledger (in-memory by default, Postgres
// when configured), seeds test data, and starts the HTTP server.
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"kusuma/internal/config"
	"kusuma/internal/handlers"
	"kusuma/internal/repositories"
	"kusuma/internal/repositories/cache"
	"kusuma/internal/seed"
)

func main() {
	config.LoadEnv()
	ctx := context.Background()

	ledger, err := initLedger()
	if err != nil {
		log.Fatalf("Failed to init ledger: %v", err)
	}

	// Seed on startup so the service is immediately usable.
	if config.GetBoolEnv("SEED_ON_START", true) {
		_, txns, err := ledger.Counts(ctx)
		if err != nil {
			log.Fatalf("Failed to count ledger records: %v", err)
		}
		if txns == 0 {
			log.Println("[server] ledger is empty, seeding test data")
			if err := seed.Run(ctx, ledger); err != nil {
				log.Fatalf("Failed to seed ledger: %v", err)
			}
		} else {
			log.Printf("[server] ledger already has %d transactions, skipping seed", txns)
		}
	}

	cacheSvc := initCache(ctx)
	if cacheSvc != nil {
		defer func() {
			if err := cacheSvc.Close(); err != nil {
				log.Printf("[server] failed to close Redis connection: %v", err)
			}
		}()
	}

	app := fiber.New(fiber.Config{
		AppName: "Kusuma Settlement Service",
	})

	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	handlers.SetupRoutes(app, ledger, cacheSvc)

	port := config.GetEnv("PORT", "8080")
	log.Printf("[server] Kusuma Settlement Service listening on :%s (ledger=%s)",
		port, config.LedgerDriver())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func initLedger() (repositories.Ledger, error) {
	switch config.LedgerDriver() {
	case config.LedgerDriverPostgres:
		db, err := repositories.InitPostgres()
		if err != nil {
			return nil, err
		}
		return repositories.NewGormLedger(db)
	default:
		return repositories.NewMemoryLedger(), nil
	}
}

// initCache connects Redis when enabled; the service runs fine without it,
// payout responses just stop being cached.
func initCache(ctx context.Context) *cache.CacheService {
	if !config.GetBoolEnv("REDIS_ENABLED", false) {
		return nil
	}

	client := cache.NewRedisClient(&cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	svc := cache.NewCacheService(client, 15*time.Minute)

	// Cached summaries from a previous process may not match a reseeded
	// ledger, so start clean.
	if err := svc.InvalidatePrefix(ctx, "payout:"); err != nil {
		log.Printf("[server] failed to flush payout cache: %v", err)
	}

	return svc
}
