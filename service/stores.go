package service

import (
	"context"

	"tourism-webapp/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lookups by id return an error wrapping errors.ErrNotFound when nothing
// matches. List operations return an empty, non-nil slice instead.

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update model.UserUpdate) (*model.User, error)
}

type DestinationStore interface {
	Create(ctx context.Context, destination *model.Destination) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Destination, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Destination, error)
	FindAll(ctx context.Context) ([]model.Destination, error)
}

type BookingStore interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.BookingStatus) (*model.Booking, error)
}

type FavoriteStore interface {
	Create(ctx context.Context, favorite *model.Favorite) error
	Exists(ctx context.Context, userID, destinationID primitive.ObjectID) (bool, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Favorite, error)
}

type ActivityStore interface {
	Create(ctx context.Context, activity *model.Activity) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Activity, error)
}

type ImageStore interface {
	Create(ctx context.Context, image *model.Image) error
	// Find returns every image, or only those in category when it is not empty.
	Find(ctx context.Context, category string) ([]model.Image, error)
}

type PageStore interface {
	Create(ctx context.Context, page *model.Page) error
	FindAll(ctx context.Context) ([]model.Page, error)
	FindBySlug(ctx context.Context, slug string) (*model.Page, error)
}

// Stores groups one repository per collection.
type Stores struct {
	Users        UserStore
	Destinations DestinationStore
	Bookings     BookingStore
	Favorites    FavoriteStore
	Activities   ActivityStore
	Images       ImageStore
	Pages        PageStore
}

// DestinationCache keeps the full destination list between requests.
// Invalidate bumps a generation counter; Set stores the list only while the
// generation still equals the one read before loading it.
type DestinationCache interface {
	Get(ctx context.Context) ([]model.Destination, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, generation int64, destinations []model.Destination) error
	Invalidate(ctx context.Context) error
}

type noCache struct{}

func (noCache) Get(context.Context) ([]model.Destination, bool, error) { return nil, false, nil }
func (noCache) Generation(context.Context) (int64, error)              { return 0, nil }
func (noCache) Set(context.Context, int64, []model.Destination) error  { return nil }
func (noCache) Invalidate(context.Context) error                       { return nil }

// NoCache is used when no cache backend is configured.
var NoCache DestinationCache = noCache{}
