package database

import (
	"context"

	"tourism-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DestinationRepository struct {
	coll *mongo.Collection
}

func NewDestinationRepository(coll *mongo.Collection) *DestinationRepository {
	return &DestinationRepository{coll: coll}
}

func (r *DestinationRepository) Create(ctx context.Context, destination *model.Destination) error {
	destination.Id = primitive.NewObjectID()
	_, err := r.coll.InsertOne(ctx, destination)
	return translate(err)
}

func (r *DestinationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Destination, error) {
	var destination model.Destination
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&destination)
	if err != nil {
		return nil, notFound("destination", id.Hex(), err)
	}
	return &destination, nil
}

func (r *DestinationRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Destination, error) {
	if len(ids) == 0 {
		return []model.Destination{}, nil
	}
	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	return findAll[model.Destination](ctx, r.coll, filter)
}

func (r *DestinationRepository) FindAll(ctx context.Context) ([]model.Destination, error) {
	return findAll[model.Destination](ctx, r.coll, bson.D{})
}
