package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitzone/fitzone-api/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBMIRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/bmi", NewBMIHandler().Calculate)
	return router
}

func TestCalculateBMIEndpoint(t *testing.T) {
	router := newBMIRouter()

	cases := []struct {
		name     string
		body     BMIRequest
		bmi      float64
		category string
	}{
		{"normal weight", BMIRequest{HeightCm: 180, WeightKg: 75}, 23.1, "Normal weight"},
		{"underweight", BMIRequest{HeightCm: 160, WeightKg: 45}, 17.6, "Underweight"},
		{"overweight", BMIRequest{HeightCm: 170, WeightKg: 80}, 27.7, "Overweight"},
		{"obese", BMIRequest{HeightCm: 170, WeightKg: 100}, 34.6, "Obese"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, router, "/api/v1/bmi", tc.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var result domain.BMIResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
			assert.InDelta(t, tc.bmi, result.BMI, 0.001)
			assert.Equal(t, tc.category, result.Category)
		})
	}
}

func TestCalculateBMIRejectsBadInput(t *testing.T) {
	router := newBMIRouter()

	cases := []struct {
		name string
		body string
	}{
		{"missing weight", `{"heightCm": 180}`},
		{"missing height", `{"weightKg": 75}`},
		{"zero height", `{"heightCm": 0, "weightKg": 75}`},
		{"negative weight", `{"heightCm": 180, "weightKg": -5}`},
		{"empty body", `{}`},
		{"malformed json", `{"heightCm":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bmi", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
