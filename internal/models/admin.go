package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // bcrypt hash
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Profile strips the credential fields for API responses.
func (a Admin) Profile() CreatorRef {
	return CreatorRef{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}
