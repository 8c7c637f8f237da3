package service

import (
	"context"
	"fitzone/fitzone-api/internal/domain"
	"fitzone/fitzone-api/internal/repository"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories implementing the repository interfaces. They mirror
// the store-level guarantees the Mongo implementations get from their unique
// indexes (email, user+program) so service tests exercise the same paths.

type memUserRepo struct {
	users []domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users = append(r.users, *user)
	return user.ID, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type memProgramRepo struct {
	programs []domain.Program
}

func newMemProgramRepo() *memProgramRepo {
	return &memProgramRepo{}
}

func (r *memProgramRepo) Create(ctx context.Context, program *domain.Program) (primitive.ObjectID, error) {
	program.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now
	r.programs = append(r.programs, *program)
	return program.ID, nil
}

func (r *memProgramRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	for i := range r.programs {
		if r.programs[i].ID == id {
			p := r.programs[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memProgramRepo) GetAll(ctx context.Context) ([]domain.Program, error) {
	out := make([]domain.Program, len(r.programs))
	copy(out, r.programs)
	return out, nil
}

func (r *memProgramRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.programs)), nil
}

func (r *memProgramRepo) Update(ctx context.Context, program *domain.Program) error {
	for i := range r.programs {
		if r.programs[i].ID == program.ID {
			program.UpdatedAt = time.Now().UTC()
			r.programs[i] = *program
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memProgramRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range r.programs {
		if r.programs[i].ID == id {
			r.programs = append(r.programs[:i], r.programs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memTrainerRepo struct {
	trainers []domain.Trainer
}

func newMemTrainerRepo() *memTrainerRepo {
	return &memTrainerRepo{}
}

func (r *memTrainerRepo) Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error) {
	trainer.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	trainer.CreatedAt = now
	trainer.UpdatedAt = now
	r.trainers = append(r.trainers, *trainer)
	return trainer.ID, nil
}

func (r *memTrainerRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	for i := range r.trainers {
		if r.trainers[i].ID == id {
			tr := r.trainers[i]
			return &tr, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memTrainerRepo) GetAll(ctx context.Context) ([]domain.Trainer, error) {
	out := make([]domain.Trainer, len(r.trainers))
	copy(out, r.trainers)
	return out, nil
}

func (r *memTrainerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.trainers)), nil
}

func (r *memTrainerRepo) Update(ctx context.Context, trainer *domain.Trainer) error {
	for i := range r.trainers {
		if r.trainers[i].ID == trainer.ID {
			trainer.UpdatedAt = time.Now().UTC()
			r.trainers[i] = *trainer
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memTrainerRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range r.trainers {
		if r.trainers[i].ID == id {
			r.trainers = append(r.trainers[:i], r.trainers[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memEnrollmentRepo struct {
	enrollments []domain.Enrollment
}

func newMemEnrollmentRepo() *memEnrollmentRepo {
	return &memEnrollmentRepo{}
}

func (r *memEnrollmentRepo) Create(ctx context.Context, enrollment *domain.Enrollment) (primitive.ObjectID, error) {
	for _, e := range r.enrollments {
		if e.UserID == enrollment.UserID && e.ProgramID == enrollment.ProgramID {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	enrollment.ID = primitive.NewObjectID()
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = time.Now().UTC()
	}
	if enrollment.Status == "" {
		enrollment.Status = domain.EnrollmentStatusActive
	}
	r.enrollments = append(r.enrollments, *enrollment)
	return enrollment.ID, nil
}

func (r *memEnrollmentRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Enrollment, error) {
	out := []domain.Enrollment{}
	for _, e := range r.enrollments {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memEnrollmentRepo) CountByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	var n int64
	for _, e := range r.enrollments {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

type memLeadRepo struct {
	leads []domain.Lead
}

func newMemLeadRepo() *memLeadRepo {
	return &memLeadRepo{}
}

func (r *memLeadRepo) Create(ctx context.Context, lead *domain.Lead) (primitive.ObjectID, error) {
	lead.ID = primitive.NewObjectID()
	lead.CreatedAt = time.Now().UTC()
	r.leads = append(r.leads, *lead)
	return lead.ID, nil
}

func (r *memLeadRepo) GetAll(ctx context.Context) ([]domain.Lead, error) {
	out := make([]domain.Lead, len(r.leads))
	copy(out, r.leads)
	return out, nil
}

// fakeFileStorage records presign requests without touching any backend.
type fakeFileStorage struct {
	uploadRequests []string
}

func (f *fakeFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error) {
	f.uploadRequests = append(f.uploadRequests, objectKey)
	return fmt.Sprintf("https://storage.test/upload/%s", objectKey), nil
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.test/download/%s", objectKey), nil
}

func (f *fakeFileStorage) ObjectURL(objectKey string) string {
	return fmt.Sprintf("https://storage.test/public/%s", objectKey)
}

func (f *fakeFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	return nil
}
