package repository

import (
	"context"
	"fitzone/fitzone-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate record")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

// ProgramRepository defines the interface for interacting with catalog programs.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	GetAll(ctx context.Context) ([]domain.Program, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, program *domain.Program) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TrainerRepository defines the interface for interacting with trainer profiles.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	GetAll(ctx context.Context) ([]domain.Trainer, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, trainer *domain.Trainer) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EnrollmentRepository defines the interface for interacting with enrollments.
// Create must surface ErrDuplicate when the (user, program) pair already
// exists; the unique index is the authority, not a prior read.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *domain.Enrollment) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Enrollment, error)
	CountByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// LeadRepository defines the interface for captured form submissions.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) (primitive.ObjectID, error)
	GetAll(ctx context.Context) ([]domain.Lead, error)
}
