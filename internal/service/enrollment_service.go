package service

import (
	"context"
	"errors"
	"fitzone/fitzone-api/internal/domain"
	"fitzone/fitzone-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrAlreadyEnrolled = errors.New("already enrolled in this program")
)

// EnrollmentWithProgram joins an enrollment with its program record for the
// member dashboard. Program is nil when the program was deleted after the
// member enrolled.
type EnrollmentWithProgram struct {
	Enrollment domain.Enrollment
	Program    *domain.Program
}

// DashboardStats are the numbers shown at the top of the member dashboard.
type DashboardStats struct {
	TotalPrograms     int64 `json:"totalPrograms"`
	ActiveEnrollments int64 `json:"activeEnrollments"`
}

// EnrollmentService manages program signups for members.
type EnrollmentService interface {
	Enroll(ctx context.Context, userID, programID primitive.ObjectID) (*domain.Enrollment, error)
	ListForUser(ctx context.Context, userID primitive.ObjectID) ([]EnrollmentWithProgram, error)
	Stats(ctx context.Context, userID primitive.ObjectID) (*DashboardStats, error)
}

// enrollmentService implements the EnrollmentService interface.
type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	programRepo    repository.ProgramRepository
}

// NewEnrollmentService creates a new instance of enrollmentService.
func NewEnrollmentService(enrollmentRepo repository.EnrollmentRepository, programRepo repository.ProgramRepository) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		programRepo:    programRepo,
	}
}

// Enroll signs the member up for a program. Duplicate signup detection rides
// on the store's unique (user, program) index, so a second attempt fails
// atomically with ErrAlreadyEnrolled and leaves exactly one record.
func (s *enrollmentService) Enroll(ctx context.Context, userID, programID primitive.ObjectID) (*domain.Enrollment, error) {
	if userID == primitive.NilObjectID || programID == primitive.NilObjectID {
		return nil, errors.New("user ID and program ID are required")
	}

	// Referential check: the program must exist at enroll time.
	if _, err := s.programRepo.GetByID(ctx, programID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	enrollment := &domain.Enrollment{
		UserID:    userID,
		ProgramID: programID,
		Status:    domain.EnrollmentStatusActive,
	}

	enrollmentID, err := s.enrollmentRepo.Create(ctx, enrollment)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}
	enrollment.ID = enrollmentID

	return enrollment, nil
}

// ListForUser returns the member's enrollments, each joined with its program.
func (s *enrollmentService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]EnrollmentWithProgram, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}

	enrollments, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]EnrollmentWithProgram, 0, len(enrollments))
	for _, enrollment := range enrollments {
		entry := EnrollmentWithProgram{Enrollment: enrollment}

		program, err := s.programRepo.GetByID(ctx, enrollment.ProgramID)
		if err == nil {
			entry.Program = program
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		// A deleted program leaves entry.Program nil; the dashboard still
		// shows the enrollment itself.

		result = append(result, entry)
	}

	return result, nil
}

// Stats returns dashboard counters for the member.
func (s *enrollmentService) Stats(ctx context.Context, userID primitive.ObjectID) (*DashboardStats, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}

	totalPrograms, err := s.programRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeEnrollments, err := s.enrollmentRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalPrograms:     totalPrograms,
		ActiveEnrollments: activeEnrollments,
	}, nil
}
