package database

import (
	"context"

	"tourism-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PageRepository struct {
	coll *mongo.Collection
}

func NewPageRepository(coll *mongo.Collection) *PageRepository {
	return &PageRepository{coll: coll}
}

func (r *PageRepository) Create(ctx context.Context, page *model.Page) error {
	page.Id = primitive.NewObjectID()
	_, err := r.coll.InsertOne(ctx, page)
	return translate(err)
}

func (r *PageRepository) FindAll(ctx context.Context) ([]model.Page, error) {
	opts := options.Find().SetSort(bson.D{{Key: "slug", Value: 1}})
	return findAll[model.Page](ctx, r.coll, bson.D{}, opts)
}

func (r *PageRepository) FindBySlug(ctx context.Context, slug string) (*model.Page, error) {
	var page model.Page
	err := r.coll.FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).Decode(&page)
	if err != nil {
		return nil, notFound("page", slug, err)
	}
	return &page, nil
}
