package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Destination struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Type        string             `json:"type" bson:"type"`
	Rating      float64            `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	Description string             `json:"description" bson:"description"`
	ImageUrl    string             `json:"imageUrl" bson:"imageUrl"`
}
