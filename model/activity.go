package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ActivityBooking      = "booking"
	ActivityFavorite     = "favorite"
	ActivityCancellation = "cancellation"
)

type Activity struct {
	Id            primitive.ObjectID  `json:"_id" bson:"_id"`
	UserId        primitive.ObjectID  `json:"userId" bson:"userId"`
	Type          string              `json:"type" bson:"type"`
	Content       string              `json:"content" bson:"content"`
	DestinationId *primitive.ObjectID `json:"destinationId,omitempty" bson:"destinationId,omitempty"`
	CreatedAt     time.Time           `json:"createdAt" bson:"createdAt"`
}
