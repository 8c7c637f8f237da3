package seed

import (
	"context"
	"errors"
	"fitzone/fitzone-api/internal/config"
	"fitzone/fitzone-api/internal/domain"
	"fitzone/fitzone-api/internal/repository"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Seeder populates the reference catalog and guarantees the admin account
// exists. Run is safe to call on every application start: each table is
// seeded only when empty, and the admin only when its email is absent.
type Seeder struct {
	programRepo repository.ProgramRepository
	trainerRepo repository.TrainerRepository
	userRepo    repository.UserRepository
	admin       config.AdminConfig
}

// NewSeeder creates a Seeder wired to the given repositories.
func NewSeeder(
	programRepo repository.ProgramRepository,
	trainerRepo repository.TrainerRepository,
	userRepo repository.UserRepository,
	admin config.AdminConfig,
) *Seeder {
	return &Seeder{
		programRepo: programRepo,
		trainerRepo: trainerRepo,
		userRepo:    userRepo,
		admin:       admin,
	}
}

// Run seeds programs, trainers, and the admin account in that order.
// Granularity is per table: a table with at least one record is left alone,
// partial seed state is not detected.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedPrograms(ctx); err != nil {
		return fmt.Errorf("seeding programs: %w", err)
	}
	if err := s.seedTrainers(ctx); err != nil {
		return fmt.Errorf("seeding trainers: %w", err)
	}
	if err := s.ensureAdmin(ctx); err != nil {
		return fmt.Errorf("ensuring admin account: %w", err)
	}
	return nil
}

func (s *Seeder) seedPrograms(ctx context.Context) error {
	count, err := s.programRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range referencePrograms {
		program := referencePrograms[i]
		if _, err := s.programRepo.Create(ctx, &program); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d reference programs", len(referencePrograms))
	return nil
}

func (s *Seeder) seedTrainers(ctx context.Context) error {
	count, err := s.trainerRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range referenceTrainers {
		trainer := referenceTrainers[i]
		if _, err := s.trainerRepo.Create(ctx, &trainer); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d reference trainers", len(referenceTrainers))
	return nil
}

func (s *Seeder) ensureAdmin(ctx context.Context) error {
	_, err := s.userRepo.GetByEmail(ctx, s.admin.Email)
	if err == nil {
		return nil // Admin already present
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Name:         s.admin.Name,
		Email:        s.admin.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if _, err := s.userRepo.Create(ctx, admin); err != nil {
		// A concurrent start may have inserted the admin between the lookup
		// and the insert; the unique email index turns that into ErrDuplicate.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return err
	}
	log.Printf("Created admin account %s", s.admin.Email)
	return nil
}
