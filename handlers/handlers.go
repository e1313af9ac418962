package handlers

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"tourism-webapp/config"
	"tourism-webapp/errors"
	"tourism-webapp/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pinger is implemented by backends that can report their connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Stores service.Stores
	Store  Pinger
	// Cache is optional; nil disables destination caching.
	Cache  service.DestinationCache
	Config *config.Config
	// HashCost overrides the bcrypt cost when non-zero.
	HashCost int
}

type Handler struct {
	users      *service.UserService
	catalog    *service.CatalogService
	bookings   *service.BookingService
	favorites  *service.FavoriteService
	activities *service.ActivityService
	images     service.ImageStore
	pages      service.PageStore

	store   Pinger
	cache   Pinger
	auth    config.AuthConfig
	timeout time.Duration
}

func New(deps Deps) *Handler {
	activities := service.NewActivityService(deps.Stores.Activities)

	users := service.NewUserService(deps.Stores.Users)
	if deps.HashCost != 0 {
		users = users.WithHashCost(deps.HashCost)
	}

	h := &Handler{
		users:      users,
		catalog:    service.NewCatalogService(deps.Stores.Destinations, deps.Cache),
		bookings:   service.NewBookingService(deps.Stores.Bookings, deps.Stores.Destinations, deps.Stores.Users, activities),
		favorites:  service.NewFavoriteService(deps.Stores.Favorites, deps.Stores.Destinations, activities),
		activities: activities,
		images:     deps.Stores.Images,
		pages:      deps.Stores.Pages,
		store:      deps.Store,
		auth:       deps.Config.Auth,
		timeout:    deps.Config.Store.OpTimeout,
	}
	if pinger, ok := deps.Cache.(Pinger); ok {
		h.cache = pinger
	}
	return h
}

// context bounds every store round-trip of one request.
func (h *Handler) context(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), h.timeout)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseBody decodes the JSON body into out and runs its validate tags.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: unacceptable request body: %v", errors.ErrValidation, err)
	}
	if err := validate.Struct(out); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", fe.Field()))
		default:
			problems = append(problems, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		}
	}
	return fmt.Errorf("%w: %s", errors.ErrValidation, strings.Join(problems, ", "))
}

func objectID(c *fiber.Ctx, param string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(param))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s %q is not a valid id", errors.ErrValidation, param, c.Params(param))
	}
	return id, nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", errors.ErrValidation, field)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s %q is not a date, use YYYY-MM-DD", errors.ErrValidation, field, value)
}
