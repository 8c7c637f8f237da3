package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeadType distinguishes which public form captured the lead.
type LeadType string

const (
	LeadTypeContact LeadType = "contact"
	LeadTypeJoinNow LeadType = "join-now"
)

// Lead is a visitor submission from the contact or join-now forms.
// Leads are append-only; the admin console is the only reader.
type Lead struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Message string             `bson:"message,omitempty" json:"message,omitempty"`
	Type    LeadType           `bson:"type" json:"type"`

	// Join-now only
	Address     string `bson:"address,omitempty" json:"address,omitempty"`
	DateOfBirth string `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender      string `bson:"gender,omitempty" json:"gender,omitempty"`
	FitnessGoal string `bson:"fitnessGoal,omitempty" json:"fitnessGoal,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
