package handlers

import (
	"github.com/gofiber/fiber/v2"

	"kusuma/internal/repositories"
	"kusuma/internal/utils/response"
)

type SellerHandler struct {
	ledger repositories.Ledger
}

func NewSellerHandler(ledger repositories.Ledger) *SellerHandler {
	return &SellerHandler{ledger: ledger}
}

// ListSellers returns every seller known to the ledger.
func (h *SellerHandler) ListSellers(c *fiber.Ctx) error {
	sellers, err := h.ledger.ListSellers(c.Context())
	if err != nil {
		return response.ServerError(c, "failed to list sellers")
	}
	return response.JSON(c, fiber.Map{"sellers": sellers})
}

// GetSeller returns one seller or 404.
func (h *SellerHandler) GetSeller(c *fiber.Ctx) error {
	id := c.Params("id")
	seller, err := h.ledger.GetSeller(c.Context(), id)
	if err != nil {
		return response.ServerError(c, "failed to get seller")
	}
	if seller == nil {
		return response.NotFound(c, "seller '"+id+"' not found")
	}
	return response.JSON(c, seller)
}
