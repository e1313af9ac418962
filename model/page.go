package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Page struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id"`
	Slug      string             `json:"slug" bson:"slug" validate:"required"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
