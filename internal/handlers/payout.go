package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"kusuma/internal/models"
	"kusuma/internal/repositories"
	"kusuma/internal/repositories/cache"
	"kusuma/internal/services/payout"
	"kusuma/internal/utils/response"
)

const dateLayout = "2006-01-02"

// pendingWindowStart is the earliest capture date considered when scanning
// for pending payouts.
var pendingWindowStart = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

type PayoutHandler struct {
	engine *payout.Service
	ledger repositories.Ledger
	cache  *cache.CacheService // nil when Redis is disabled
}

func NewPayoutHandler(engine *payout.Service, ledger repositories.Ledger, cacheSvc *cache.CacheService) *PayoutHandler {
	return &PayoutHandler{
		engine: engine,
		ledger: ledger,
		cache:  cacheSvc,
	}
}

// GetPayout calculates the payout for one seller and date range.
// GET /api/v1/sellers/:id/payout?start_date=2026-01-01&end_date=2026-01-07
func (h *PayoutHandler) GetPayout(c *fiber.Ctx) error {
	sellerID := c.Params("id")

	start, err := time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		return response.BadRequest(c, "start_date must be a valid YYYY-MM-DD date")
	}
	end, err := time.Parse(dateLayout, c.Query("end_date"))
	if err != nil {
		return response.BadRequest(c, "end_date must be a valid YYYY-MM-DD date")
	}
	if start.After(end) {
		return response.BadRequest(c, "start_date must not be after end_date")
	}

	key := cache.PayoutKey(sellerID, c.Query("start_date"), c.Query("end_date"))
	if h.cache != nil {
		var cached models.PayoutSummary
		if hit, err := h.cache.Get(c.Context(), key, &cached); err == nil && hit {
			return response.JSON(c, &cached)
		}
	}

	summary, err := h.engine.CalculatePayout(c.Context(), sellerID, start, end)
	if err != nil {
		if errors.Is(err, payout.ErrSellerNotFound) {
			return response.NotFound(c, "seller '"+sellerID+"' not found")
		}
		log.Printf("[handlers] payout for %s failed: %v", sellerID, err)
		return response.ServerError(c, "payout calculation failed")
	}

	if h.cache != nil {
		if err := h.cache.Set(c.Context(), key, summary); err != nil {
			log.Printf("[handlers] failed to cache payout %s: %v", key, err)
		}
	}

	return response.JSON(c, summary)
}

// GetPendingPayouts lists sellers with a positive pending payout as of the
// given date (default today).
// GET /api/v1/payouts/pending?as_of=2026-02-01
func (h *PayoutHandler) GetPendingPayouts(c *fiber.Ctx) error {
	cutoff := time.Now().UTC()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return response.BadRequest(c, "as_of must be a valid YYYY-MM-DD date")
		}
		cutoff = parsed
	}

	sellers, err := h.ledger.ListSellers(c.Context())
	if err != nil {
		return response.ServerError(c, "failed to list sellers")
	}

	pending := make([]fiber.Map, 0, len(sellers))
	for _, seller := range sellers {
		summary, err := h.engine.CalculatePayout(c.Context(), seller.ID, pendingWindowStart, cutoff)
		if err != nil {
			// A single seller failing must not take the scan down.
			log.Printf("[handlers] pending payout for %s skipped: %v", seller.ID, err)
			continue
		}
		if !summary.NetPayout.IsPositive() {
			continue
		}
		pending = append(pending, fiber.Map{
			"seller_id":         seller.ID,
			"seller_name":       seller.Name,
			"pending_amount":    summary.NetPayout.String(),
			"currency":          summary.SettlementCurrency,
			"transaction_count": summary.TransactionCount,
		})
	}

	return response.JSON(c, fiber.Map{"pending_payouts": pending})
}
