// Package handlers exposes the settlement service over HTTP: seller
// lookups, payout calculation and the admin reseed endpoint.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"kusuma/internal/middleware"
	"kusuma/internal/repositories"
	"kusuma/internal/repositories/cache"
	"kusuma/internal/services/currency"
	"kusuma/internal/services/payout"
)

// SetupRoutes wires the services and registers all routes on the app.
// cacheSvc may be nil when Redis is disabled.
func SetupRoutes(app *fiber.App, ledger repositories.Ledger, cacheSvc *cache.CacheService) {
	converter := currency.NewConverter(currency.DefaultTable())
	engine := payout.NewService(ledger, converter)

	sellerHandler := NewSellerHandler(ledger)
	payoutHandler := NewPayoutHandler(engine, ledger, cacheSvc)
	adminHandler := NewAdminHandler(ledger, cacheSvc)

	app.Use(middleware.RequestID())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Kusuma Settlement Service",
			"version": "1.0.0",
			"docs":    "/api/v1",
		})
	})
	app.Get("/health", HealthCheck)

	api := app.Group("/api/v1")
	api.Get("/sellers", sellerHandler.ListSellers)
	api.Get("/sellers/:id", sellerHandler.GetSeller)
	api.Get("/sellers/:id/payout", payoutHandler.GetPayout)
	api.Get("/payouts/pending", payoutHandler.GetPendingPayouts)
	api.Post("/admin/seed", adminHandler.Reseed)
}
