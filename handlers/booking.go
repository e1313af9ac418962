package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"tourism-webapp/errors"
	"tourism-webapp/service"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bookingRequest struct {
	UserId      primitive.ObjectID `json:"userId"`
	Destination primitive.ObjectID `json:"destination"`
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate"`
	Travelers   travelerCount      `json:"travelers"`
}

// travelerCount accepts a JSON number or a numeric string, since form inputs
// post their value as text. Null and "" decode as zero.
type travelerCount int

func (n *travelerCount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*n = 0
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*n = 0
			return nil
		}
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("travelers %s is not a whole number", b)
	}
	*n = travelerCount(value)
	return nil
}

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	var req bookingRequest
	if err := parseBody(c, &req); err != nil {
		return errors.Respond(c, err)
	}

	startDate, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return errors.Respond(c, err)
	}
	endDate, err := parseDate("endDate", req.EndDate)
	if err != nil {
		return errors.Respond(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	booking, err := h.bookings.CreateBooking(ctx, service.BookingRequest{
		UserID:        req.UserId,
		DestinationID: req.Destination,
		StartDate:     startDate,
		EndDate:       endDate,
		Travelers:     int(req.Travelers),
	})
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(booking)
}

func (h *Handler) GetBookings(c *fiber.Ctx) error {
	userID, err := objectID(c, "userId")
	if err != nil {
		return errors.Respond(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	bookings, err := h.bookings.ListBookingsForUser(ctx, userID)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(bookings)
}

func (h *Handler) CancelBooking(c *fiber.Ctx) error {
	bookingID, err := objectID(c, "bookingId")
	if err != nil {
		return errors.Respond(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	booking, err := h.bookings.CancelBooking(ctx, bookingID)
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(booking)
}
