package service

import (
	"context"
	"errors"
	"fitzone/fitzone-api/internal/domain"
	"fitzone/fitzone-api/internal/repository"
	"fitzone/fitzone-api/internal/storage"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProgramNotFound      = errors.New("program not found")
	ErrTrainerNotFound      = errors.New("trainer not found")
	ErrCatalogValidation    = errors.New("catalog entry validation failed")
	ErrUnsupportedImageType = errors.New("unsupported image content type")
	ErrUploadURLError       = errors.New("failed to generate image upload URL")
)

// ProgramInput carries the editable fields of a Program.
type ProgramInput struct {
	Name           string
	Description    string
	Duration       string
	Level          string
	CaloriesBurned int
	Equipment      string
	Image          string
}

// TrainerInput carries the editable fields of a Trainer.
type TrainerInput struct {
	Name           string
	Specialization string
	Experience     string
	Bio            string
	Image          string
}

// ImageUploadTicket is handed to the admin console so it can PUT the image
// bytes straight to object storage, then store PublicURL on the record.
type ImageUploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
	PublicURL string `json:"publicUrl"`
}

// CatalogService manages the program and trainer catalog plus the admin
// console's read-only views (members, catalog images).
type CatalogService interface {
	ListPrograms(ctx context.Context) ([]domain.Program, error)
	GetProgram(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	CreateProgram(ctx context.Context, input ProgramInput) (*domain.Program, error)
	UpdateProgram(ctx context.Context, id primitive.ObjectID, input ProgramInput) (*domain.Program, error)
	DeleteProgram(ctx context.Context, id primitive.ObjectID) error

	ListTrainers(ctx context.Context) ([]domain.Trainer, error)
	GetTrainer(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	CreateTrainer(ctx context.Context, input TrainerInput) (*domain.Trainer, error)
	UpdateTrainer(ctx context.Context, id primitive.ObjectID, input TrainerInput) (*domain.Trainer, error)
	DeleteTrainer(ctx context.Context, id primitive.ObjectID) error

	ListMembers(ctx context.Context) ([]domain.User, error)
	GenerateImageUploadURL(ctx context.Context, contentType string) (*ImageUploadTicket, error)
}

// catalogService implements the CatalogService interface.
type catalogService struct {
	programRepo repository.ProgramRepository
	trainerRepo repository.TrainerRepository
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(
	programRepo repository.ProgramRepository,
	trainerRepo repository.TrainerRepository,
	userRepo repository.UserRepository,
	fileStorage storage.FileStorage,
) CatalogService {
	return &catalogService{
		programRepo: programRepo,
		trainerRepo: trainerRepo,
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

// --- Programs ---

func (s *catalogService) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	return s.programRepo.GetAll(ctx)
}

func (s *catalogService) GetProgram(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

func (s *catalogService) CreateProgram(ctx context.Context, input ProgramInput) (*domain.Program, error) {
	if input.Name == "" {
		return nil, ErrCatalogValidation
	}

	program := &domain.Program{
		Name:           input.Name,
		Description:    input.Description,
		Duration:       input.Duration,
		Level:          input.Level,
		CaloriesBurned: input.CaloriesBurned,
		Equipment:      input.Equipment,
		Image:          input.Image,
	}

	programID, err := s.programRepo.Create(ctx, program)
	if err != nil {
		return nil, err
	}
	// Fetch again so the caller sees store-assigned timestamps.
	return s.programRepo.GetByID(ctx, programID)
}

func (s *catalogService) UpdateProgram(ctx context.Context, id primitive.ObjectID, input ProgramInput) (*domain.Program, error) {
	if input.Name == "" {
		return nil, ErrCatalogValidation
	}

	existing, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Duration = input.Duration
	existing.Level = input.Level
	existing.CaloriesBurned = input.CaloriesBurned
	existing.Equipment = input.Equipment
	existing.Image = input.Image

	if err := s.programRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *catalogService) DeleteProgram(ctx context.Context, id primitive.ObjectID) error {
	err := s.programRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	return nil
}

// --- Trainers ---

func (s *catalogService) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	return s.trainerRepo.GetAll(ctx)
}

func (s *catalogService) GetTrainer(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}

func (s *catalogService) CreateTrainer(ctx context.Context, input TrainerInput) (*domain.Trainer, error) {
	if input.Name == "" {
		return nil, ErrCatalogValidation
	}

	trainer := &domain.Trainer{
		Name:           input.Name,
		Specialization: input.Specialization,
		Experience:     input.Experience,
		Bio:            input.Bio,
		Image:          input.Image,
	}

	trainerID, err := s.trainerRepo.Create(ctx, trainer)
	if err != nil {
		return nil, err
	}
	return s.trainerRepo.GetByID(ctx, trainerID)
}

func (s *catalogService) UpdateTrainer(ctx context.Context, id primitive.ObjectID, input TrainerInput) (*domain.Trainer, error) {
	if input.Name == "" {
		return nil, ErrCatalogValidation
	}

	existing, err := s.trainerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	existing.Name = input.Name
	existing.Specialization = input.Specialization
	existing.Experience = input.Experience
	existing.Bio = input.Bio
	existing.Image = input.Image

	if err := s.trainerRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *catalogService) DeleteTrainer(ctx context.Context, id primitive.ObjectID) error {
	err := s.trainerRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}
	return nil
}

// --- Admin console views ---

// ListMembers returns all role=user accounts, sanitized.
func (s *catalogService) ListMembers(ctx context.Context) ([]domain.User, error) {
	members, err := s.userRepo.GetByRole(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	for i := range members {
		members[i].PasswordHash = ""
	}
	return members, nil
}

// GenerateImageUploadURL issues a presigned PUT URL for a catalog image.
// The admin console uploads directly to object storage and then saves the
// returned public URL on the program or trainer record.
func (s *catalogService) GenerateImageUploadURL(ctx context.Context, contentType string) (*ImageUploadTicket, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedImageType
	}

	fileExtension := ""
	parts := strings.Split(contentType, "/")
	if len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("catalog-images", fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &ImageUploadTicket{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
		PublicURL: s.fileStorage.ObjectURL(objectKey),
	}, nil
}
