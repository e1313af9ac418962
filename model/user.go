package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id           primitive.ObjectID `json:"_id" bson:"_id"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	Phone        string             `json:"phone" bson:"phone"`
	Address      string             `json:"address" bson:"address"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// PublicUser is the part of a user record that is sent to clients.
type PublicUser struct {
	Id       primitive.ObjectID `json:"_id"`
	Username string             `json:"username"`
	Email    string             `json:"email"`
	Phone    string             `json:"phone"`
	Address  string             `json:"address"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		Id:       u.Id,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Address:  u.Address,
	}
}

// UserUpdate holds the fields of a partial profile edit; nil fields are left
// untouched.
type UserUpdate struct {
	Username     *string `bson:"username,omitempty"`
	Email        *string `bson:"email,omitempty"`
	Phone        *string `bson:"phone,omitempty"`
	Address      *string `bson:"address,omitempty"`
	PasswordHash *string `bson:"password_hash,omitempty"`
}

func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Phone == nil && u.Address == nil && u.PasswordHash == nil
}

// Apply copies the set fields onto user.
func (u UserUpdate) Apply(user *User) {
	if u.Username != nil {
		user.Username = *u.Username
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Phone != nil {
		user.Phone = *u.Phone
	}
	if u.Address != nil {
		user.Address = *u.Address
	}
	if u.PasswordHash != nil {
		user.PasswordHash = *u.PasswordHash
	}
}
