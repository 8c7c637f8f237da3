package api

import (
	"errors"
	"fitzone/fitzone-api/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrollmentHandler serves program signups and the member dashboard.
type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// --- DTOs ---

type EnrollRequest struct {
	ProgramID string `json:"programId" binding:"required"`
}

// EnrollmentResponse joins the enrollment with its program (when it still exists).
type EnrollmentResponse struct {
	ID         string           `json:"id"`
	ProgramID  string           `json:"programId"`
	EnrolledAt time.Time        `json:"enrolledAt"`
	Status     string           `json:"status"`
	Program    *ProgramResponse `json:"program,omitempty"`
}

// --- Handler Methods ---

// Enroll godoc
// @Summary Enroll the current user in a program
// @Tags Enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param enrollment body EnrollRequest true "Program to enroll in"
// @Success 201 {object} EnrollmentResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Program not found"
// @Failure 409 {object} gin.H "Already enrolled"
// @Router /enrollments [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	programID, err := primitive.ObjectIDFromHex(req.ProgramID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID format")
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), userID, programID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyEnrolled) {
			abortWithError(c, http.StatusConflict, "You are already enrolled in this program")
		} else if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Error enrolling in program")
		}
		return
	}

	c.JSON(http.StatusCreated, EnrollmentResponse{
		ID:         enrollment.ID.Hex(),
		ProgramID:  enrollment.ProgramID.Hex(),
		EnrolledAt: enrollment.EnrolledAt,
		Status:     string(enrollment.Status),
	})
}

// ListMine godoc
// @Summary List the current user's enrollments
// @Tags Enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} EnrollmentResponse
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /enrollments [get]
func (h *EnrollmentHandler) ListMine(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	entries, err := h.enrollmentService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load enrollments")
		return
	}

	responses := make([]EnrollmentResponse, len(entries))
	for i, entry := range entries {
		responses[i] = EnrollmentResponse{
			ID:         entry.Enrollment.ID.Hex(),
			ProgramID:  entry.Enrollment.ProgramID.Hex(),
			EnrolledAt: entry.Enrollment.EnrolledAt,
			Status:     string(entry.Enrollment.Status),
		}
		if entry.Program != nil {
			program := MapProgramToResponse(entry.Program)
			responses[i].Program = &program
		}
	}

	c.JSON(http.StatusOK, responses)
}

// Stats godoc
// @Summary Member dashboard counters
// @Tags Enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /dashboard/stats [get]
func (h *EnrollmentHandler) Stats(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	stats, err := h.enrollmentService.Stats(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// currentUserID resolves the authenticated user's ObjectID from the context
// set by AuthMiddleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, error) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return primitive.ObjectIDFromHex(userIDStr)
}
