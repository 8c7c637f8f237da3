package domain

import (
	"errors"
	"math"
)

// BMI category labels, matching the thresholds shown on the calculator page.
const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal weight"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

var ErrInvalidBMIInput = errors.New("height and weight must both be positive numbers")

// BMIResult holds the computed index (rounded to one decimal) and its category.
type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// CalculateBMI computes the body mass index from height in centimeters and
// weight in kilograms. Categories: <18.5 Underweight, [18.5, 25) Normal,
// [25, 30) Overweight, >=30 Obese. Classification uses the rounded value,
// the same way the calculator page classified its displayed number.
func CalculateBMI(heightCm, weightKg float64) (BMIResult, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return BMIResult{}, ErrInvalidBMIInput
	}

	heightM := heightCm / 100
	bmi := math.Round(weightKg/(heightM*heightM)*10) / 10

	var category string
	switch {
	case bmi < 18.5:
		category = BMIUnderweight
	case bmi < 25:
		category = BMINormal
	case bmi < 30:
		category = BMIOverweight
	default:
		category = BMIObese
	}

	return BMIResult{BMI: bmi, Category: category}, nil
}
