package database

import (
	"context"
	"fmt"

	"tourism-webapp/config"
	"tourism-webapp/errors"
	"tourism-webapp/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection        = "users"
	DestinationsCollection = "destinations"
	BookingsCollection     = "bookings"
	FavoritesCollection    = "favorites"
	ActivitiesCollection   = "activities"
	ImagesCollection       = "images"
	PagesCollection        = "pages"
)

// Store owns the client connection and hands out one repository per
// collection. Repositories keep no state besides their collection handle.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.OpTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to the db: %v", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.OpTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: db is not available: %v", errors.ErrStoreUnavailable, err)
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

func (s *Store) Stores() service.Stores {
	return service.Stores{
		Users:        NewUserRepository(s.db.Collection(UsersCollection)),
		Destinations: NewDestinationRepository(s.db.Collection(DestinationsCollection)),
		Bookings:     NewBookingRepository(s.db.Collection(BookingsCollection)),
		Favorites:    NewFavoriteRepository(s.db.Collection(FavoritesCollection)),
		Activities:   NewActivityRepository(s.db.Collection(ActivitiesCollection)),
		Images:       NewImageRepository(s.db.Collection(ImagesCollection)),
		Pages:        NewPageRepository(s.db.Collection(PagesCollection)),
	}
}

// EnsureIndexes creates the uniqueness and lookup indexes the repositories
// rely on. Creating an index that already exists is a no-op.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		FavoritesCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "destinationId", Value: 1}}, Options: unique},
		},
		PagesCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		BookingsCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		ActivitiesCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		ImagesCollection: {
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := s.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("cannot create indexes on %v: %w", collection, translate(err))
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, nil); err != nil {
		return translate(err)
	}
	return nil
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
