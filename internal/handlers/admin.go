package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kusuma/internal/repositories"
	"kusuma/internal/repositories/cache"
	"kusuma/internal/seed"
	"kusuma/internal/utils/response"
)

type AdminHandler struct {
	ledger repositories.Ledger
	cache  *cache.CacheService // nil when Redis is disabled
}

func NewAdminHandler(ledger repositories.Ledger, cacheSvc *cache.CacheService) *AdminHandler {
	return &AdminHandler{ledger: ledger, cache: cacheSvc}
}

// Reseed wipes the ledger, loads fresh deterministic test data and drops
// every cached payout summary.
// POST /api/v1/admin/seed
func (h *AdminHandler) Reseed(c *fiber.Ctx) error {
	if err := h.ledger.Clear(c.Context()); err != nil {
		return response.ServerError(c, "failed to clear ledger")
	}
	if err := seed.Run(c.Context(), h.ledger); err != nil {
		log.Printf("[handlers] reseed failed: %v", err)
		return response.ServerError(c, "failed to seed ledger")
	}

	if h.cache != nil {
		if err := h.cache.InvalidatePrefix(c.Context(), "payout:"); err != nil {
			log.Printf("[handlers] failed to invalidate payout cache: %v", err)
		}
	}

	sellers, txns, err := h.ledger.Counts(c.Context())
	if err != nil {
		return response.ServerError(c, "failed to count ledger records")
	}

	return response.JSON(c, fiber.Map{
		"status":       "seeded",
		"seed_run_id":  uuid.NewString(),
		"sellers":      sellers,
		"transactions": txns,
	})
}
