// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package calc implements the health calculators as pure functions over
// plain numbers. The formulas perform no bounds validation: out-of-range
// inputs yield mathematically defined but physiologically meaningless
// values. Range checks live in the Registry, which is what the HTTP API and
// the CLI call.
//
// Internal computation keeps full float64 precision; only the result
// structs are rounded for display.
package calc

import "math"

// Gender selects the sex-specific constants of a formula.
type Gender string

const (
	Male   Gender = "erkek"
	Female Gender = "kadin"
)

// ActivityLevel is a TDEE activity class.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "hareketsiz"
	LightlyActive    ActivityLevel = "az-aktif"
	ModeratelyActive ActivityLevel = "orta-aktif"
	VeryActive       ActivityLevel = "cok-aktif"
	ExtraActive      ActivityLevel = "asiri-aktif"
)

// activityMultipliers maps each activity level to its TDEE multiplier.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	ExtraActive:      1.9,
}

// Multiplier returns the TDEE multiplier for the level, or 0 if the level
// is unknown.
func (a ActivityLevel) Multiplier() float64 {
	return activityMultipliers[a]
}

// round rounds x to the given number of decimal places.
func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// roundInt rounds x to the nearest integer.
func roundInt(x float64) int {
	return int(math.Round(x))
}
