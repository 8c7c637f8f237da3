package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program difficulty levels shown in the catalog.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Program represents a workout program in the gym catalog.
type Program struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Duration       string             `bson:"duration,omitempty" json:"duration,omitempty"`             // e.g., "12 weeks"
	Level          string             `bson:"level,omitempty" json:"level,omitempty"`                   // Beginner / Intermediate / Advanced
	CaloriesBurned int                `bson:"caloriesBurned,omitempty" json:"caloriesBurned,omitempty"` // Per session estimate
	Equipment      string             `bson:"equipment,omitempty" json:"equipment,omitempty"`           // Free text list
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`                   // Public image URL
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
