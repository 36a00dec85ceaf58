package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order represents an order document as persisted. References are stored as
// bare ids; each products entry counts as one unit, duplicates allowed.
type Order struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	User       primitive.ObjectID   `bson:"user" json:"user"`
	Products   []primitive.ObjectID `bson:"products" json:"products"`
	TotalPrice float64              `bson:"totalPrice" json:"totalPrice"`
	CreatedAt  time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// OrderRequest represents the request payload for creating an order.
type OrderRequest struct {
	User       string   `json:"user" validate:"required,objectid"`
	Products   []string `json:"products" validate:"dive,objectid"`
	TotalPrice float64  `json:"totalPrice" validate:"gte=0"`
}

// OrderView is an order prepared for reading: the user reference and every
// product reference are expanded to partial projections where the referenced
// document still exists, and left as bare ids where it does not.
type OrderView struct {
	ID         primitive.ObjectID `json:"_id"`
	User       UserRef            `json:"user"`
	Products   []ProductRef       `json:"products"`
	TotalPrice float64            `json:"totalPrice"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}
