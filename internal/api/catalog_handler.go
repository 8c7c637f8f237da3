package api

import (
	"errors"
	"fitzone/fitzone-api/internal/domain"
	"fitzone/fitzone-api/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogHandler serves the public catalog: programs, trainers, and the
// static membership plans.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// --- DTOs ---

// ProgramResponse is the DTO for returning program details.
type ProgramResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Duration       string    `json:"duration,omitempty"`
	Level          string    `json:"level,omitempty"`
	CaloriesBurned int       `json:"caloriesBurned,omitempty"`
	Equipment      string    `json:"equipment,omitempty"`
	Image          string    `json:"image,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TrainerResponse is the DTO for returning trainer details.
type TrainerResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization,omitempty"`
	Experience     string    `json:"experience,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Image          string    `json:"image,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// MapProgramToResponse converts a domain.Program to its DTO.
func MapProgramToResponse(p *domain.Program) ProgramResponse {
	if p == nil {
		return ProgramResponse{}
	}
	return ProgramResponse{
		ID:             p.ID.Hex(),
		Name:           p.Name,
		Description:    p.Description,
		Duration:       p.Duration,
		Level:          p.Level,
		CaloriesBurned: p.CaloriesBurned,
		Equipment:      p.Equipment,
		Image:          p.Image,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// MapProgramsToResponse converts a slice of domain.Program to DTOs.
func MapProgramsToResponse(programs []domain.Program) []ProgramResponse {
	responses := make([]ProgramResponse, len(programs))
	for i := range programs {
		responses[i] = MapProgramToResponse(&programs[i])
	}
	return responses
}

// MapTrainerToResponse converts a domain.Trainer to its DTO.
func MapTrainerToResponse(t *domain.Trainer) TrainerResponse {
	if t == nil {
		return TrainerResponse{}
	}
	return TrainerResponse{
		ID:             t.ID.Hex(),
		Name:           t.Name,
		Specialization: t.Specialization,
		Experience:     t.Experience,
		Bio:            t.Bio,
		Image:          t.Image,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// MapTrainersToResponse converts a slice of domain.Trainer to DTOs.
func MapTrainersToResponse(trainers []domain.Trainer) []TrainerResponse {
	responses := make([]TrainerResponse, len(trainers))
	for i := range trainers {
		responses[i] = MapTrainerToResponse(&trainers[i])
	}
	return responses
}

// --- Handler Methods ---

// ListPrograms godoc
// @Summary List all workout programs
// @Tags Catalog
// @Produce json
// @Success 200 {array} ProgramResponse
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /programs [get]
func (h *CatalogHandler) ListPrograms(c *gin.Context) {
	programs, err := h.catalogService.ListPrograms(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load programs")
		return
	}
	c.JSON(http.StatusOK, MapProgramsToResponse(programs))
}

// GetProgram godoc
// @Summary Get a single program
// @Tags Catalog
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} ProgramResponse
// @Failure 404 {object} gin.H "Program not found"
// @Router /programs/{id} [get]
func (h *CatalogHandler) GetProgram(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID format")
		return
	}

	program, err := h.catalogService.GetProgram(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load program")
		}
		return
	}
	c.JSON(http.StatusOK, MapProgramToResponse(program))
}

// ListTrainers godoc
// @Summary List all trainer profiles
// @Tags Catalog
// @Produce json
// @Success 200 {array} TrainerResponse
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers [get]
func (h *CatalogHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.catalogService.ListTrainers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load trainers")
		return
	}
	c.JSON(http.StatusOK, MapTrainersToResponse(trainers))
}

// GetTrainer godoc
// @Summary Get a single trainer profile
// @Tags Catalog
// @Produce json
// @Param id path string true "Trainer ID"
// @Success 200 {object} TrainerResponse
// @Failure 404 {object} gin.H "Trainer not found"
// @Router /trainers/{id} [get]
func (h *CatalogHandler) GetTrainer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}

	trainer, err := h.catalogService.GetTrainer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load trainer")
		}
		return
	}
	c.JSON(http.StatusOK, MapTrainerToResponse(trainer))
}

// ListMembershipPlans godoc
// @Summary List membership pricing tiers
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.MembershipPlan
// @Router /membership/plans [get]
func (h *CatalogHandler) ListMembershipPlans(c *gin.Context) {
	c.JSON(http.StatusOK, domain.MembershipPlans())
}
