package api

import (
	"errors"
	"fitzone/fitzone-api/internal/domain"
	"fitzone/fitzone-api/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// LeadHandler captures visitor submissions from the contact and join-now forms.
type LeadHandler struct {
	leadService service.LeadService
}

// NewLeadHandler creates a new LeadHandler.
func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// --- DTOs ---

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

type JoinNowRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	FitnessGoal string `json:"fitnessGoal"`
	Message     string `json:"message"`
}

// LeadResponse is the DTO for a captured lead.
type LeadResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone,omitempty"`
	Message     string          `json:"message,omitempty"`
	Type        domain.LeadType `json:"type"`
	Address     string          `json:"address,omitempty"`
	DateOfBirth string          `json:"dateOfBirth,omitempty"`
	Gender      string          `json:"gender,omitempty"`
	FitnessGoal string          `json:"fitnessGoal,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// MapLeadToResponse converts a domain.Lead to its DTO.
func MapLeadToResponse(lead *domain.Lead) LeadResponse {
	if lead == nil {
		return LeadResponse{}
	}
	return LeadResponse{
		ID:          lead.ID.Hex(),
		Name:        lead.Name,
		Email:       lead.Email,
		Phone:       lead.Phone,
		Message:     lead.Message,
		Type:        lead.Type,
		Address:     lead.Address,
		DateOfBirth: lead.DateOfBirth,
		Gender:      lead.Gender,
		FitnessGoal: lead.FitnessGoal,
		CreatedAt:   lead.CreatedAt,
	}
}

// MapLeadsToResponse converts a slice of domain.Lead to DTOs.
func MapLeadsToResponse(leads []domain.Lead) []LeadResponse {
	responses := make([]LeadResponse, len(leads))
	for i := range leads {
		responses[i] = MapLeadToResponse(&leads[i])
	}
	return responses
}

// --- Handler Methods ---

// SubmitContact godoc
// @Summary Submit the contact form
// @Tags Leads
// @Accept json
// @Produce json
// @Param form body ContactRequest true "Contact details"
// @Success 201 {object} LeadResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /leads/contact [post]
func (h *LeadHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	lead, err := h.leadService.SubmitContact(c.Request.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrLeadValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Error submitting form. Please try again.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapLeadToResponse(lead))
}

// SubmitJoinNow godoc
// @Summary Submit the join-now form
// @Tags Leads
// @Accept json
// @Produce json
// @Param form body JoinNowRequest true "Membership application details"
// @Success 201 {object} LeadResponse
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /leads/join [post]
func (h *LeadHandler) SubmitJoinNow(c *gin.Context) {
	var req JoinNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	lead, err := h.leadService.SubmitJoinNow(c.Request.Context(), service.JoinNowInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		FitnessGoal: req.FitnessGoal,
		Message:     req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrLeadValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Error submitting form. Please try again.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapLeadToResponse(lead))
}
