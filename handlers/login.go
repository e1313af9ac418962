package handlers

import (
	"fmt"
	"time"

	"tourism-webapp/errors"
	"tourism-webapp/model"
	"tourism-webapp/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// credentials carries no validate tags: a blank field or an unreadable body is
// a mismatch like any other and answers 401.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type profileEdit struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Password *string `json:"password"`
}

func (h *Handler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := parseBody(c, &req); err != nil {
		return errors.Respond(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	user, err := h.users.Register(ctx, service.Registration{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		return errors.Respond(c, err)
	}

	body := fiber.Map{"message": "User registered!", "user": user.Public()}
	if err := h.attachToken(body, user); err != nil {
		return errors.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(body)
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var creds credentials
	if err := c.BodyParser(&creds); err != nil {
		return errors.Respond(c, fmt.Errorf("%w: unreadable login body", errors.ErrInvalidCredentials))
	}

	ctx, cancel := h.context(c)
	defer cancel()

	user, err := h.users.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		return errors.Respond(c, err)
	}

	body := fiber.Map{"message": "Login successful", "user": user.Public()}
	if err := h.attachToken(body, user); err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(body)
}

func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	id, err := objectID(c, "id")
	if err != nil {
		return errors.Respond(c, err)
	}
	if err := h.authorizeSelf(c, id.Hex()); err != nil {
		return errors.Respond(c, err)
	}

	var edit profileEdit
	if err := parseBody(c, &edit); err != nil {
		return errors.Respond(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	user, err := h.users.Update(ctx, id, service.ProfileEdit{
		Username: edit.Username,
		Email:    edit.Email,
		Phone:    edit.Phone,
		Address:  edit.Address,
		Password: edit.Password,
	})
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(user.Public())
}

// attachToken adds a signed session token to body when a signing key is
// configured.
func (h *Handler) attachToken(body fiber.Map, user *model.User) error {
	if h.auth.SigningKey == "" {
		return nil
	}

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = user.Id.Hex()
	claims["username"] = user.Username
	claims["exp"] = time.Now().Add(h.auth.TokenTTL).Unix()

	t, err := token.SignedString([]byte(h.auth.SigningKey))
	if err != nil {
		return fmt.Errorf("cannot sign session token: %v", err)
	}
	body["token"] = t
	return nil
}

// authorizeSelf rejects edits of another user's profile when tokens are
// enforced.
func (h *Handler) authorizeSelf(c *fiber.Ctx, userID string) error {
	if !h.auth.RequireToken {
		return nil
	}
	token, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return errors.ErrForbidden
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["sub"] != userID {
		return fmt.Errorf("%w: token does not belong to user %v", errors.ErrForbidden, userID)
	}
	return nil
}
