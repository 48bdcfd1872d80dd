package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AccessoryStatusActive   = "active"
	AccessoryStatusInactive = "inactive"
)

// Accessory is the standalone catalog entity, distinct from the accessory
// list embedded in products.
type Accessory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Colors      []string           `bson:"colors" json:"colors"`
	Status      string             `bson:"status" json:"status"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Stock       int                `bson:"stock" json:"stock"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
