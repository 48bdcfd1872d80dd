package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductColor struct {
	Name      string `bson:"name" json:"name"`
	Hex       string `bson:"hex" json:"hex"`
	Available bool   `bson:"available" json:"available"`
}

// ProductAccessory is the accessory list embedded in a product. It shares
// its shape with the standalone Accessory entity but the two are
// independent records.
type ProductAccessory struct {
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64 `bson:"price" json:"price"`
	Available   bool    `bson:"available" json:"available"`
}

// CreatorRef is the populated createdBy reference attached to product
// responses. It is resolved from the admins collection at read time and
// never stored on the product document itself.
type CreatorRef struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Brand       string             `bson:"brand" json:"brand"`
	Model       string             `bson:"model" json:"model"`
	Storage     string             `bson:"storage" json:"storage"`
	Category    string             `bson:"category" json:"category"`
	Colors      []ProductColor     `bson:"colors" json:"colors"`
	Accessories []ProductAccessory `bson:"accessories" json:"accessories"`
	CashPrice   float64            `bson:"cashPrice" json:"cashPrice"`
	VisaPrice   float64            `bson:"visaPrice" json:"visaPrice"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedByID primitive.ObjectID `bson:"createdBy,omitempty" json:"-"`
	CreatedBy   *CreatorRef        `bson:"-" json:"createdBy,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
