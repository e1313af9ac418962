package router

import (
	"tourism-webapp/config"
	"tourism-webapp/errors"
	"tourism-webapp/handlers"
	"tourism-webapp/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// NewApp builds the fiber application with the shared error handler and
// every route registered.
func NewApp(h *handlers.Handler, cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errors.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestContext())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.CORSOrigins}))

	SetupRoutes(app, h, cfg)

	if cfg.Server.StaticDir != "" {
		app.Static("/", cfg.Server.StaticDir)
	}
	return app
}

func SetupRoutes(app *fiber.App, h *handlers.Handler, cfg *config.Config) {
	root := app.Group("/", logger.New())
	root.Get("/health", h.Health)

	//Accounts
	root.Post("/signup", h.Signup)
	root.Post("/login", h.Login)

	//Catalog
	root.Post("/destinations", h.CreateDestination)

	//Favorites, activities, images, pages
	root.Post("/favorites", h.AddFavorite)
	root.Get("/favorites/:userId", h.GetFavorites)
	root.Post("/activities", h.LogActivity)
	root.Get("/activities/:userId", h.GetActivities)
	root.Post("/images", h.UploadImage)
	root.Get("/images", h.GetImages)
	root.Post("/pages", h.CreatePage)
	root.Get("/pages", h.GetPages)
	root.Get("/pages/:slug", h.GetPage)

	api := root.Group("/api")
	if cfg.Auth.RequireToken {
		api.Use(middleware.Authorize(cfg.Auth.SigningKey))
	}
	api.Put("/users/:id", h.UpdateUser)
	api.Get("/destinations", h.GetDestinations)

	//Booking
	booking := api.Group("/bookings")
	booking.Post("/", h.CreateBooking)
	booking.Get("/:userId", h.GetBookings)
	booking.Patch("/:bookingId/cancel", h.CancelBooking)
}
