package middleware

import (
	"net/http/httptest"
	"testing"

	"tourism-webapp/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContextCarriesRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: func() string { return "req-1" }}))
	app.Use(RequestContext())

	var seen interface{}
	app.Get("/", func(c *fiber.Ctx) error {
		seen = c.UserContext().Value(logger.RequestIDKey)
		return c.SendStatus(fiber.StatusNoContent)
	})

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, res.StatusCode)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", res.Header.Get(fiber.HeaderXRequestID))
}

func TestAuthorize(t *testing.T) {
	app := fiber.New()
	app.Use(Authorize("secret"))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	tests := []struct {
		description  string
		header       string
		expectedCode int
	}{
		{"missing token", "", fiber.StatusBadRequest},
		{"malformed header", "Token abc", fiber.StatusBadRequest},
		{"bad signature", "Bearer eyJhbGciOiJIUzI1NiJ9.e30.invalid", fiber.StatusUnauthorized},
	}

	for _, test := range tests {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		if test.header != "" {
			req.Header.Set(fiber.HeaderAuthorization, test.header)
		}
		res, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equalf(t, test.expectedCode, res.StatusCode, test.description)
	}
}
