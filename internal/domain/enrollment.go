package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrollmentStatus type for the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentStatusActive EnrollmentStatus = "active"
)

// Enrollment links a member to a program they signed up for.
// The store enforces one enrollment per (UserID, ProgramID) pair
// through a compound unique index.
type Enrollment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	ProgramID  primitive.ObjectID `bson:"programId" json:"programId"`
	EnrolledAt time.Time          `bson:"enrolledAt" json:"enrolledAt"`
	Status     EnrollmentStatus   `bson:"status" json:"status"`
}
