// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calc

import "math"

// WaterActivity is the activity factor of the water calculator.
type WaterActivity string

const (
	WaterActivityLow      WaterActivity = "dusuk"
	WaterActivityModerate WaterActivity = "orta"
	WaterActivityHigh     WaterActivity = "yuksek"
)

// Climate is the climate factor of the water calculator.
type Climate string

const (
	ClimateCool      Climate = "serin"
	ClimateTemperate Climate = "ilik"
	ClimateHot       Climate = "sicak"
)

var (
	waterActivityFactors = map[WaterActivity]float64{
		WaterActivityLow:      1.0,
		WaterActivityModerate: 1.2,
		WaterActivityHigh:     1.4,
	}
	climateFactors = map[Climate]float64{
		ClimateCool:      0.9,
		ClimateTemperate: 1.0,
		ClimateHot:       1.2,
	}
)

// glassML is the size of one glass of water.
const glassML = 250

// WaterIntake returns the daily water need in litres:
// weight × 0.033 × activity factor × climate factor.
func WaterIntake(weightKg float64, activity WaterActivity, climate Climate) float64 {
	return weightKg * 0.033 * waterActivityFactors[activity] * climateFactors[climate]
}

// WaterResult is the output of the water-intake calculator.
type WaterResult struct {
	Liters      float64 `json:"liters"`
	Milliliters int     `json:"milliliters"`
	Glasses     int     `json:"glasses"`
}

// EvaluateWater computes daily water need and the number of 250 ml glasses,
// rounded up.
func EvaluateWater(weightKg float64, activity WaterActivity, climate Climate) WaterResult {
	liters := WaterIntake(weightKg, activity, climate)
	ml := liters * 1000
	return WaterResult{
		Liters:      round(liters, 1),
		Milliliters: roundInt(ml),
		Glasses:     int(math.Ceil(ml / glassML)),
	}
}
