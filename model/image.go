package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Image struct {
	Id          primitive.ObjectID  `json:"_id" bson:"_id"`
	Url         string              `json:"url" bson:"url" validate:"required"`
	Category    string              `json:"category" bson:"category"`
	Tags        []string            `json:"tags" bson:"tags"`
	Description string              `json:"description" bson:"description"`
	UploadedBy  *primitive.ObjectID `json:"uploadedBy,omitempty" bson:"uploadedBy,omitempty"`
	UploadedAt  time.Time           `json:"uploadedAt" bson:"uploadedAt"`
}
