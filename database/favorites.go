package database

import (
	"context"

	"tourism-webapp/errors"
	"tourism-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FavoriteRepository struct {
	coll *mongo.Collection
}

func NewFavoriteRepository(coll *mongo.Collection) *FavoriteRepository {
	return &FavoriteRepository{coll: coll}
}

// Create relies on the unique (userId, destinationId) index to reject
// concurrent duplicates that slip past Exists.
func (r *FavoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	favorite.Id = primitive.NewObjectID()
	_, err := r.coll.InsertOne(ctx, favorite)
	return translate(err)
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, destinationID primitive.ObjectID) (bool, error) {
	filter := bson.D{{Key: "userId", Value: userID}, {Key: "destinationId", Value: destinationID}}
	opts := options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})

	var found bson.M
	err := translate(r.coll.FindOne(ctx, filter, opts).Decode(&found))
	if errors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *FavoriteRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Favorite, error) {
	opts := options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}})
	return findAll[model.Favorite](ctx, r.coll, bson.D{{Key: "userId", Value: userID}}, opts)
}
