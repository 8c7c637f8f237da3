package seed

import (
	"context"
	"testing"
	"time"

	"fitzone/fitzone-api/internal/config"
	"fitzone/fitzone-api/internal/domain"
	"fitzone/fitzone-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Minimal in-memory repositories covering what the seeder touches.

type stubProgramRepo struct {
	programs []domain.Program
}

func (r *stubProgramRepo) Create(ctx context.Context, p *domain.Program) (primitive.ObjectID, error) {
	p.ID = primitive.NewObjectID()
	r.programs = append(r.programs, *p)
	return p.ID, nil
}
func (r *stubProgramRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	return nil, repository.ErrNotFound
}
func (r *stubProgramRepo) GetAll(ctx context.Context) ([]domain.Program, error) {
	return r.programs, nil
}
func (r *stubProgramRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.programs)), nil
}
func (r *stubProgramRepo) Update(ctx context.Context, p *domain.Program) error { return nil }
func (r *stubProgramRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

type stubTrainerRepo struct {
	trainers []domain.Trainer
}

func (r *stubTrainerRepo) Create(ctx context.Context, tr *domain.Trainer) (primitive.ObjectID, error) {
	tr.ID = primitive.NewObjectID()
	r.trainers = append(r.trainers, *tr)
	return tr.ID, nil
}
func (r *stubTrainerRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	return nil, repository.ErrNotFound
}
func (r *stubTrainerRepo) GetAll(ctx context.Context) ([]domain.Trainer, error) {
	return r.trainers, nil
}
func (r *stubTrainerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.trainers)), nil
}
func (r *stubTrainerRepo) Update(ctx context.Context, tr *domain.Trainer) error { return nil }
func (r *stubTrainerRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

type stubUserRepo struct {
	users []domain.User
}

func (r *stubUserRepo) Create(ctx context.Context, u *domain.User) (primitive.ObjectID, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	r.users = append(r.users, *u)
	return u.ID, nil
}
func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}
func (r *stubUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return nil, repository.ErrNotFound
}
func (r *stubUserRepo) GetByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return nil, nil
}

var testAdmin = config.AdminConfig{
	Name:     "Admin User",
	Email:    "admin@fitzone.com",
	Password: "admin123",
}

func TestSeedFreshDatabase(t *testing.T) {
	ctx := context.Background()
	programRepo := &stubProgramRepo{}
	trainerRepo := &stubTrainerRepo{}
	userRepo := &stubUserRepo{}

	seeder := NewSeeder(programRepo, trainerRepo, userRepo, testAdmin)
	require.NoError(t, seeder.Run(ctx))

	assert.Len(t, programRepo.programs, 6)
	assert.Len(t, trainerRepo.trainers, 4)

	admin, err := userRepo.GetByEmail(ctx, "admin@fitzone.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")),
		"seeded admin password must be bcrypt-hashed")
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	programRepo := &stubProgramRepo{}
	trainerRepo := &stubTrainerRepo{}
	userRepo := &stubUserRepo{}

	seeder := NewSeeder(programRepo, trainerRepo, userRepo, testAdmin)
	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	assert.Len(t, programRepo.programs, 6, "second run must not duplicate programs")
	assert.Len(t, trainerRepo.trainers, 4, "second run must not duplicate trainers")
	assert.Len(t, userRepo.users, 1, "second run must not duplicate the admin")
}

func TestSeedSkipsNonEmptyTables(t *testing.T) {
	ctx := context.Background()
	programRepo := &stubProgramRepo{}
	trainerRepo := &stubTrainerRepo{}
	userRepo := &stubUserRepo{}

	// A table with any records is left alone, even when it holds fewer
	// entries than the reference set.
	_, err := programRepo.Create(ctx, &domain.Program{Name: "Custom Program"})
	require.NoError(t, err)

	seeder := NewSeeder(programRepo, trainerRepo, userRepo, testAdmin)
	require.NoError(t, seeder.Run(ctx))

	assert.Len(t, programRepo.programs, 1)
	assert.Len(t, trainerRepo.trainers, 4)
}

func TestSeedRecreatesMissingAdmin(t *testing.T) {
	ctx := context.Background()
	programRepo := &stubProgramRepo{}
	trainerRepo := &stubTrainerRepo{}
	userRepo := &stubUserRepo{}

	// Regular users alone do not satisfy the admin guarantee.
	_, err := userRepo.Create(ctx, &domain.User{
		Name: "Member", Email: "member@example.com", PasswordHash: "hash", Role: domain.RoleUser,
	})
	require.NoError(t, err)

	seeder := NewSeeder(programRepo, trainerRepo, userRepo, testAdmin)
	require.NoError(t, seeder.Run(ctx))

	admin, err := userRepo.GetByEmail(ctx, "admin@fitzone.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.Len(t, userRepo.users, 2)
}
