package service

import (
	"context"
	"testing"

	"fitzone/fitzone-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedProgram(t *testing.T, repo *memProgramRepo, name string) primitive.ObjectID {
	t.Helper()
	id, err := repo.Create(context.Background(), &domain.Program{Name: name})
	require.NoError(t, err)
	return id
}

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	programRepo := newMemProgramRepo()
	enrollmentRepo := newMemEnrollmentRepo()
	svc := NewEnrollmentService(enrollmentRepo, programRepo)

	programID := seedProgram(t, programRepo, "Cardio Blast")
	userID := primitive.NewObjectID()

	enrollment, err := svc.Enroll(ctx, userID, programID)
	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentStatusActive, enrollment.Status)
	assert.False(t, enrollment.EnrolledAt.IsZero())
}

func TestEnrollDuplicateRejected(t *testing.T) {
	ctx := context.Background()
	programRepo := newMemProgramRepo()
	enrollmentRepo := newMemEnrollmentRepo()
	svc := NewEnrollmentService(enrollmentRepo, programRepo)

	programID := seedProgram(t, programRepo, "HIIT Workout")
	userID := primitive.NewObjectID()

	_, err := svc.Enroll(ctx, userID, programID)
	require.NoError(t, err)

	_, err = svc.Enroll(ctx, userID, programID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.Len(t, enrollmentRepo.enrollments, 1, "second attempt must leave exactly one record")

	// Same user can still enroll in a different program.
	otherProgram := seedProgram(t, programRepo, "Pilates Core")
	_, err = svc.Enroll(ctx, userID, otherProgram)
	assert.NoError(t, err)
}

func TestEnrollUnknownProgram(t *testing.T) {
	ctx := context.Background()
	svc := NewEnrollmentService(newMemEnrollmentRepo(), newMemProgramRepo())

	_, err := svc.Enroll(ctx, primitive.NewObjectID(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestListForUserJoinsPrograms(t *testing.T) {
	ctx := context.Background()
	programRepo := newMemProgramRepo()
	enrollmentRepo := newMemEnrollmentRepo()
	svc := NewEnrollmentService(enrollmentRepo, programRepo)

	keptProgram := seedProgram(t, programRepo, "Strength Training")
	doomedProgram := seedProgram(t, programRepo, "CrossFit Challenge")
	userID := primitive.NewObjectID()

	_, err := svc.Enroll(ctx, userID, keptProgram)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, userID, doomedProgram)
	require.NoError(t, err)

	// Deleting a program must not break the member's enrollment list.
	require.NoError(t, programRepo.Delete(ctx, doomedProgram))

	entries, err := svc.ListForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byProgram := map[primitive.ObjectID]*domain.Program{}
	for _, entry := range entries {
		byProgram[entry.Enrollment.ProgramID] = entry.Program
	}
	assert.NotNil(t, byProgram[keptProgram])
	assert.Equal(t, "Strength Training", byProgram[keptProgram].Name)
	assert.Nil(t, byProgram[doomedProgram])
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	programRepo := newMemProgramRepo()
	enrollmentRepo := newMemEnrollmentRepo()
	svc := NewEnrollmentService(enrollmentRepo, programRepo)

	first := seedProgram(t, programRepo, "Yoga & Flexibility")
	seedProgram(t, programRepo, "Cardio Blast")
	seedProgram(t, programRepo, "Pilates Core")

	userID := primitive.NewObjectID()
	_, err := svc.Enroll(ctx, userID, first)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalPrograms)
	assert.Equal(t, int64(1), stats.ActiveEnrollments)
}
