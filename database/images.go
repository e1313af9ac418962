package database

import (
	"context"

	"tourism-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ImageRepository struct {
	coll *mongo.Collection
}

func NewImageRepository(coll *mongo.Collection) *ImageRepository {
	return &ImageRepository{coll: coll}
}

func (r *ImageRepository) Create(ctx context.Context, image *model.Image) error {
	image.Id = primitive.NewObjectID()
	_, err := r.coll.InsertOne(ctx, image)
	return translate(err)
}

func (r *ImageRepository) Find(ctx context.Context, category string) ([]model.Image, error) {
	filter := bson.D{}
	if category != "" {
		filter = bson.D{{Key: "category", Value: category}}
	}
	return findAll[model.Image](ctx, r.coll, filter)
}
