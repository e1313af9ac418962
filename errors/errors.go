package errors

import (
	stderrors "errors"

	"tourism-webapp/logger"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrValidation         = stderrors.New("validation failed")
	ErrDuplicateKey       = stderrors.New("duplicate key")
	ErrNotFound           = stderrors.New("not found")
	ErrStoreUnavailable   = stderrors.New("store unavailable")
	ErrInvalidCredentials = stderrors.New("invalid credentials")
	ErrForbidden          = stderrors.New("forbidden")
)

func RaiseError(context *fiber.Ctx, status int, message string, data string) error {
	return context.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data})
}

// Classify returns the HTTP status and envelope message for err.
func Classify(err error) (int, string) {
	switch {
	case stderrors.Is(err, ErrValidation):
		return fiber.StatusBadRequest, "bad request"
	case stderrors.Is(err, ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "invalid credentials"
	case stderrors.Is(err, ErrForbidden):
		return fiber.StatusForbidden, "lack of permissions"
	case stderrors.Is(err, ErrNotFound):
		return fiber.StatusNotFound, "resource not found"
	case stderrors.Is(err, ErrDuplicateKey):
		return fiber.StatusConflict, "resource already exists"
	case stderrors.Is(err, ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable, "store unavailable"
	}

	var fiberErr *fiber.Error
	if stderrors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}
	return fiber.StatusInternalServerError, "internal error"
}

// Respond writes err to the client using the shared status mapping. Server
// side failures are logged with the request path.
func Respond(context *fiber.Ctx, err error) error {
	status, message := Classify(err)
	if status >= fiber.StatusInternalServerError {
		logger.ErrorContext(context.UserContext(), message,
			"method", context.Method(), "path", context.Path(), "status", status, "error", err)
	}
	return RaiseError(context, status, message, err.Error())
}

// ErrorHandler is installed as the fiber.Config ErrorHandler so that every
// error returned from a handler ends up in the same envelope.
func ErrorHandler(context *fiber.Ctx, err error) error {
	return Respond(context, err)
}

func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound)
}
