package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Favorite struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	UserId        primitive.ObjectID `json:"userId" bson:"userId"`
	DestinationId primitive.ObjectID `json:"destinationId" bson:"destinationId"`
	AddedAt       time.Time          `json:"addedAt" bson:"addedAt"`
}

// FavoriteDetails carries the resolved destination under the destinationId
// key, the shape the dashboard reads.
type FavoriteDetails struct {
	Favorite    `bson:",inline"`
	Destination *Destination `json:"destinationId" bson:"-"`
}
