package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Health always answers 200; the body reports whether the backends respond.
func (h *Handler) Health(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	dbState := "connected"
	if h.store == nil || h.store.Ping(ctx) != nil {
		dbState = "disconnected"
	}

	cacheState := "disabled"
	if h.cache != nil {
		cacheState = "connected"
		if err := h.cache.Ping(ctx); err != nil {
			cacheState = "disconnected"
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"dbState": dbState,
		"cache":   cacheState})
}
