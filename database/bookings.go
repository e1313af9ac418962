package database

import (
	"context"
	"fmt"
	"time"

	"tourism-webapp/errors"
	"tourism-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(coll *mongo.Collection) *BookingRepository {
	return &BookingRepository{coll: coll}
}

func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	booking.Id = primitive.NewObjectID()
	_, err := r.coll.InsertOne(ctx, booking)
	return translate(err)
}

func (r *BookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error) {
	var booking model.Booking
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&booking)
	if err != nil {
		return nil, notFound("booking", id.Hex(), err)
	}
	return &booking, nil
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findAll[model.Booking](ctx, r.coll, bson.D{{Key: "userId", Value: userID}}, opts)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status model.BookingStatus) (*model.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown booking status %q", errors.ErrValidation, status)
	}

	var booking model.Booking
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&booking)
	if err != nil {
		return nil, notFound("booking", id.Hex(), err)
	}
	return &booking, nil
}
