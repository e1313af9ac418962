package handlers

import (
	"tourism-webapp/errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type favoriteRequest struct {
	UserId        primitive.ObjectID `json:"userId"`
	DestinationId primitive.ObjectID `json:"destinationId"`
}

func (h *Handler) AddFavorite(c *fiber.Ctx) error {
	var req favoriteRequest
	if err := parseBody(c, &req); err != nil {
		return errors.Respond(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	favorite, err := h.favorites.AddFavorite(ctx, req.UserId, req.DestinationId)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Favorite added!",
		"favorite": favorite})
}

func (h *Handler) GetFavorites(c *fiber.Ctx) error {
	userID, err := objectID(c, "userId")
	if err != nil {
		return errors.Respond(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	favorites, err := h.favorites.ListFavorites(ctx, userID)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(favorites)
}
