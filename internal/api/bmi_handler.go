package api

import (
	"fitzone/fitzone-api/internal/domain"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BMIHandler serves the stateless BMI calculator. No store interaction.
type BMIHandler struct{}

// NewBMIHandler creates a new BMIHandler.
func NewBMIHandler() *BMIHandler {
	return &BMIHandler{}
}

// BMIRequest requires both measurements; a missing or zero value fails
// binding before any computation happens.
type BMIRequest struct {
	HeightCm float64 `json:"heightCm" binding:"required,gt=0"`
	WeightKg float64 `json:"weightKg" binding:"required,gt=0"`
}

// Calculate godoc
// @Summary Calculate BMI
// @Description Computes body mass index from height (cm) and weight (kg).
// @Tags BMI
// @Accept json
// @Produce json
// @Param measurements body BMIRequest true "Height and weight"
// @Success 200 {object} domain.BMIResult
// @Failure 400 {object} gin.H "Missing or invalid measurements"
// @Router /bmi [post]
func (h *BMIHandler) Calculate(c *gin.Context) {
	var req BMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Please enter both height and weight: %v", err))
		return
	}

	result, err := domain.CalculateBMI(req.HeightCm, req.WeightKg)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}
