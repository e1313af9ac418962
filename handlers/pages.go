package handlers

import (
	"fmt"
	"strings"
	"time"

	"tourism-webapp/errors"
	"tourism-webapp/model"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreatePage(c *fiber.Ctx) error {
	page := new(model.Page)
	if err := parseBody(c, page); err != nil {
		return errors.Respond(c, err)
	}
	page.Slug = strings.ToLower(strings.TrimSpace(page.Slug))
	if page.Slug == "" {
		return errors.Respond(c, fmt.Errorf("%w: slug is required", errors.ErrValidation))
	}
	page.CreatedAt = time.Now().UTC()

	ctx, cancel := h.context(c)
	defer cancel()

	if err := h.pages.Create(ctx, page); err != nil {
		return errors.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(page)
}

func (h *Handler) GetPages(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	pages, err := h.pages.FindAll(ctx)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(pages)
}

func (h *Handler) GetPage(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	page, err := h.pages.FindBySlug(ctx, strings.ToLower(c.Params("slug")))
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(page)
}
