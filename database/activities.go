package database

import (
	"context"

	"tourism-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(coll *mongo.Collection) *ActivityRepository {
	return &ActivityRepository{coll: coll}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	activity.Id = primitive.NewObjectID()
	_, err := r.coll.InsertOne(ctx, activity)
	return translate(err)
}

func (r *ActivityRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Activity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findAll[model.Activity](ctx, r.coll, bson.D{{Key: "userId", Value: userID}}, opts)
}
