// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calc

// BMICategory is the WHO body-mass-index class, labelled in Turkish.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Zayıf"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Fazla Kilolu"
	BMIObeseI      BMICategory = "Obez (1. Derece)"
	BMIObeseII     BMICategory = "Obez (2. Derece)"
	BMIObeseIII    BMICategory = "Obez (3. Derece)"
)

// Healthy BMI bounds used for the weight ranges.
const (
	healthyBMIMin = 18.5
	healthyBMIMax = 24.9
)

// BMI returns weight / height².
func BMI(weightKg, heightM float64) float64 {
	return weightKg / (heightM * heightM)
}

// ClassifyBMI maps a BMI value to its category.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	case bmi < 35:
		return BMIObeseI
	case bmi < 40:
		return BMIObeseII
	default:
		return BMIObeseIII
	}
}

// WeightRange is a healthy body-weight range in kilograms.
type WeightRange struct {
	MinKg float64 `json:"minKg"`
	MaxKg float64 `json:"maxKg"`
}

// HealthyWeightRange returns the weights that give a BMI of 18.5–24.9 at
// the given height.
func HealthyWeightRange(heightM float64) WeightRange {
	h2 := heightM * heightM
	return WeightRange{
		MinKg: round(healthyBMIMin*h2, 1),
		MaxKg: round(healthyBMIMax*h2, 1),
	}
}

// BMIResult is the output of the BMI calculator.
type BMIResult struct {
	BMI           float64     `json:"bmi"`
	Category      BMICategory `json:"category"`
	HealthyWeight WeightRange `json:"healthyWeight"`
}

// EvaluateBMI computes BMI for a height given in centimetres. The category
// is taken from the displayed (one-decimal) value so label and number agree.
func EvaluateBMI(weightKg, heightCm float64) BMIResult {
	heightM := heightCm / 100
	value := round(BMI(weightKg, heightM), 1)
	return BMIResult{
		BMI:           value,
		Category:      ClassifyBMI(value),
		HealthyWeight: HealthyWeightRange(heightM),
	}
}
