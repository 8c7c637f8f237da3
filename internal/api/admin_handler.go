package api

import (
	"errors"
	"fitzone/fitzone-api/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler serves the admin console: program and trainer CRUD, the
// member list, captured leads, and catalog image uploads.
type AdminHandler struct {
	catalogService service.CatalogService
	leadService    service.LeadService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(catalogService service.CatalogService, leadService service.LeadService) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
		leadService:    leadService,
	}
}

// --- DTOs ---

// ProgramRequest is the modal form payload for creating or editing a program.
type ProgramRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Duration       string `json:"duration"`
	Level          string `json:"level" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	CaloriesBurned int    `json:"caloriesBurned" binding:"omitempty,gte=0"`
	Equipment      string `json:"equipment"`
	Image          string `json:"image" binding:"omitempty,url"`
}

// TrainerRequest is the modal form payload for creating or editing a trainer.
type TrainerRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	Bio            string `json:"bio"`
	Image          string `json:"image" binding:"omitempty,url"`
}

// ImageUploadRequest asks for a presigned upload slot for a catalog image.
type ImageUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

func (r ProgramRequest) toInput() service.ProgramInput {
	return service.ProgramInput{
		Name:           r.Name,
		Description:    r.Description,
		Duration:       r.Duration,
		Level:          r.Level,
		CaloriesBurned: r.CaloriesBurned,
		Equipment:      r.Equipment,
		Image:          r.Image,
	}
}

func (r TrainerRequest) toInput() service.TrainerInput {
	return service.TrainerInput{
		Name:           r.Name,
		Specialization: r.Specialization,
		Experience:     r.Experience,
		Bio:            r.Bio,
		Image:          r.Image,
	}
}

// --- Program CRUD ---

// CreateProgram godoc
// @Summary Create a program
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param program body ProgramRequest true "Program details"
// @Success 201 {object} ProgramResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /admin/programs [post]
func (h *AdminHandler) CreateProgram(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	program, err := h.catalogService.CreateProgram(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrCatalogValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Error saving program")
		}
		return
	}

	c.JSON(http.StatusCreated, MapProgramToResponse(program))
}

// UpdateProgram godoc
// @Summary Update a program
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Param program body ProgramRequest true "Program details"
// @Success 200 {object} ProgramResponse
// @Failure 404 {object} gin.H "Program not found"
// @Router /admin/programs/{id} [put]
func (h *AdminHandler) UpdateProgram(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID format")
		return
	}

	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	program, err := h.catalogService.UpdateProgram(c.Request.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrCatalogValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Error saving program")
		}
		return
	}

	c.JSON(http.StatusOK, MapProgramToResponse(program))
}

// DeleteProgram godoc
// @Summary Delete a program
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Success 200 {object} gin.H "Deleted"
// @Failure 404 {object} gin.H "Program not found"
// @Router /admin/programs/{id} [delete]
func (h *AdminHandler) DeleteProgram(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID format")
		return
	}

	if err := h.catalogService.DeleteProgram(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Error deleting program")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Program deleted successfully"})
}

// --- Trainer CRUD ---

// CreateTrainer godoc
// @Summary Create a trainer profile
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trainer body TrainerRequest true "Trainer details"
// @Success 201 {object} TrainerResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /admin/trainers [post]
func (h *AdminHandler) CreateTrainer(c *gin.Context) {
	var req TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainer, err := h.catalogService.CreateTrainer(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrCatalogValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Error saving trainer")
		}
		return
	}

	c.JSON(http.StatusCreated, MapTrainerToResponse(trainer))
}

// UpdateTrainer godoc
// @Summary Update a trainer profile
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer ID"
// @Param trainer body TrainerRequest true "Trainer details"
// @Success 200 {object} TrainerResponse
// @Failure 404 {object} gin.H "Trainer not found"
// @Router /admin/trainers/{id} [put]
func (h *AdminHandler) UpdateTrainer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}

	var req TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	trainer, err := h.catalogService.UpdateTrainer(c.Request.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrCatalogValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Error saving trainer")
		}
		return
	}

	c.JSON(http.StatusOK, MapTrainerToResponse(trainer))
}

// DeleteTrainer godoc
// @Summary Delete a trainer profile
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer ID"
// @Success 200 {object} gin.H "Deleted"
// @Failure 404 {object} gin.H "Trainer not found"
// @Router /admin/trainers/{id} [delete]
func (h *AdminHandler) DeleteTrainer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format")
		return
	}

	if err := h.catalogService.DeleteTrainer(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Error deleting trainer")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trainer deleted successfully"})
}

// --- Read-only console views ---

// ListMembers godoc
// @Summary List member accounts (role=user)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /admin/members [get]
func (h *AdminHandler) ListMembers(c *gin.Context) {
	members, err := h.catalogService.ListMembers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load members")
		return
	}
	c.JSON(http.StatusOK, MapUsersToResponse(members))
}

// ListLeads godoc
// @Summary List captured form submissions
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} LeadResponse
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /admin/leads [get]
func (h *AdminHandler) ListLeads(c *gin.Context) {
	leads, err := h.leadService.ListLeads(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load leads")
		return
	}
	c.JSON(http.StatusOK, MapLeadsToResponse(leads))
}

// CreateImageUpload godoc
// @Summary Get a presigned upload URL for a catalog image
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param upload body ImageUploadRequest true "Image content type"
// @Success 201 {object} service.ImageUploadTicket
// @Failure 400 {object} gin.H "Unsupported content type"
// @Router /admin/uploads/images [post]
func (h *AdminHandler) CreateImageUpload(c *gin.Context) {
	var req ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	ticket, err := h.catalogService.GenerateImageUploadURL(c.Request.Context(), req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedImageType) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not create upload URL")
		}
		return
	}

	c.JSON(http.StatusCreated, ticket)
}
