package handlers

import (
	"tourism-webapp/errors"
	"tourism-webapp/model"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateDestination(c *fiber.Ctx) error {
	destination := new(model.Destination)
	if err := parseBody(c, destination); err != nil {
		return errors.Respond(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	if err := h.catalog.CreateDestination(ctx, destination); err != nil {
		return errors.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Destination created!",
		"destination": destination})
}

func (h *Handler) GetDestinations(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	destinations, err := h.catalog.ListDestinations(ctx)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(destinations)
}
