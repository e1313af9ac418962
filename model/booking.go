package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

const DefaultTravelers = 1

type Booking struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	UserId        primitive.ObjectID `json:"userId" bson:"userId"`
	DestinationId primitive.ObjectID `json:"destination" bson:"destination"`
	StartDate     time.Time          `json:"startDate" bson:"startDate"`
	EndDate       time.Time          `json:"endDate" bson:"endDate"`
	Travelers     int                `json:"travelers" bson:"travelers"`
	Status        BookingStatus      `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// BookingDetails is a booking whose destination reference has been replaced
// by the referenced record. Destination is nil when the reference dangles.
type BookingDetails struct {
	Booking     `bson:",inline"`
	Destination *Destination `json:"destination" bson:"-"`
}
