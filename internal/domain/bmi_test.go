package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name         string
		heightCm     float64
		weightKg     float64
		wantBMI      float64
		wantCategory string
	}{
		{"normal weight", 180, 75, 23.1, BMINormal},
		{"underweight", 160, 45, 17.6, BMIUnderweight},
		{"obese", 170, 100, 34.6, BMIObese},
		{"overweight", 170, 80, 27.7, BMIOverweight},
		{"normal lower bound", 200, 74, 18.5, BMINormal},
		{"just under normal", 200, 73.9, 18.5, BMINormal}, // 18.475 rounds up to the boundary
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculateBMI(tt.heightCm, tt.weightKg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBMI, result.BMI)
			assert.Equal(t, tt.wantCategory, result.Category)
		})
	}
}

func TestCalculateBMIInvalidInput(t *testing.T) {
	for _, tt := range []struct {
		name     string
		heightCm float64
		weightKg float64
	}{
		{"zero height", 0, 75},
		{"zero weight", 180, 0},
		{"negative height", -170, 75},
		{"negative weight", 170, -5},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateBMI(tt.heightCm, tt.weightKg)
			assert.ErrorIs(t, err, ErrInvalidBMIInput)
		})
	}
}
