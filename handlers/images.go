package handlers

import (
	"fmt"
	"strings"
	"time"

	"tourism-webapp/errors"
	"tourism-webapp/model"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) UploadImage(c *fiber.Ctx) error {
	image := new(model.Image)
	if err := parseBody(c, image); err != nil {
		return errors.Respond(c, err)
	}
	image.Url = strings.TrimSpace(image.Url)
	if image.Url == "" {
		return errors.Respond(c, fmt.Errorf("%w: url is required", errors.ErrValidation))
	}
	image.Category = strings.TrimSpace(image.Category)
	if image.Tags == nil {
		image.Tags = []string{}
	}
	if image.UploadedBy != nil && image.UploadedBy.IsZero() {
		image.UploadedBy = nil
	}
	image.UploadedAt = time.Now().UTC()

	ctx, cancel := h.context(c)
	defer cancel()

	if err := h.images.Create(ctx, image); err != nil {
		return errors.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Image uploaded!",
		"image":   image})
}

func (h *Handler) GetImages(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	images, err := h.images.Find(ctx, strings.TrimSpace(c.Query("category")))
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(images)
}
