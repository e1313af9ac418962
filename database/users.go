package database

import (
	"context"

	"tourism-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) *UserRepository {
	return &UserRepository{coll: coll}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	user.Id = primitive.NewObjectID()
	_, err := r.coll.InsertOne(ctx, user)
	return translate(err)
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if err != nil {
		return nil, notFound("user", id.Hex(), err)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&user)
	if err != nil {
		return nil, notFound("user", username, err)
	}
	return &user, nil
}

// UpdateByID applies the non-nil fields of update and returns the stored
// record after the change.
func (r *UserRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update model.UserUpdate) (*model.User, error) {
	var user model.User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: update}},
		opts).Decode(&user)
	if err != nil {
		return nil, notFound("user", id.Hex(), err)
	}
	return &user, nil
}
