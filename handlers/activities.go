package handlers

import (
	"tourism-webapp/errors"
	"tourism-webapp/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type activityRequest struct {
	UserId        primitive.ObjectID  `json:"userId"`
	Type          string              `json:"type" validate:"required"`
	Content       string              `json:"content"`
	DestinationId *primitive.ObjectID `json:"destinationId"`
}

func (h *Handler) LogActivity(c *fiber.Ctx) error {
	var req activityRequest
	if err := parseBody(c, &req); err != nil {
		return errors.Respond(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	activity := &model.Activity{
		UserId:        req.UserId,
		Type:          req.Type,
		Content:       req.Content,
		DestinationId: req.DestinationId,
	}
	if err := h.activities.Log(ctx, activity); err != nil {
		return errors.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Activity logged!",
		"activity": activity})
}

func (h *Handler) GetActivities(c *fiber.Ctx) error {
	userID, err := objectID(c, "userId")
	if err != nil {
		return errors.Respond(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	activities, err := h.activities.ListForUser(ctx, userID)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(activities)
}
