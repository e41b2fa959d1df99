package handlers

import (
	"github.com/gofiber/fiber/v2"

	"kusuma/internal/config"
)

func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"ledger":  config.LedgerDriver(),
	})
}
