package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trainer represents a coach profile in the gym catalog.
type Trainer struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Specialization string             `bson:"specialization,omitempty" json:"specialization,omitempty"` // e.g., "Yoga, Pilates"
	Experience     string             `bson:"experience,omitempty" json:"experience,omitempty"`         // e.g., "10 years"
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
