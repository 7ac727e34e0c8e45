// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calc

import "math"

// KcalPerKg is the energy equivalent of one kilogram of body mass.
const KcalPerKg = 7700

// Pace labels a weekly rate of weight change.
type Pace string

const (
	PaceRisky   Pace = "Riskli"
	PaceFast    Pace = "Hızlı"
	PaceHealthy Pace = "Sağlıklı"
	PaceSlow    Pace = "Yavaş"
)

// ClassifyPace labels a weekly rate in kg.
func ClassifyPace(weeklyRateKg float64) Pace {
	switch {
	case weeklyRateKg > 1.0:
		return PaceRisky
	case weeklyRateKg > 0.75:
		return PaceFast
	case weeklyRateKg >= 0.5:
		return PaceHealthy
	default:
		return PaceSlow
	}
}

// Direction of a weight change.
type Direction string

const (
	DirectionLose     Direction = "ver"
	DirectionGain     Direction = "al"
	DirectionMaintain Direction = "koru"
)

// WeightChangeResult is the output of the weight-change timeline calculator.
type WeightChangeResult struct {
	Direction         Direction `json:"direction"`
	DifferenceKg      float64   `json:"differenceKg"`
	WeeklyRateKg      float64   `json:"weeklyRateKg"`
	Weeks             float64   `json:"weeks"`
	Days              int       `json:"days"`
	DailyCalorieDelta int       `json:"dailyCalorieDelta"`
	Pace              Pace      `json:"pace"`
}

// WeightChange computes how long it takes to move from current to target
// weight at weeklyRateKg, and the daily calorie deficit (or surplus) that
// rate implies.
func WeightChange(currentKg, targetKg, weeklyRateKg float64) WeightChangeResult {
	diff := math.Abs(currentKg - targetKg)
	weeks := diff / weeklyRateKg

	dir := DirectionMaintain
	switch {
	case targetKg < currentKg:
		dir = DirectionLose
	case targetKg > currentKg:
		dir = DirectionGain
	}

	return WeightChangeResult{
		Direction:         dir,
		DifferenceKg:      round(diff, 1),
		WeeklyRateKg:      weeklyRateKg,
		Weeks:             round(weeks, 1),
		Days:              roundInt(weeks * 7),
		DailyCalorieDelta: roundInt(weeklyRateKg * KcalPerKg / 7),
		Pace:              ClassifyPace(weeklyRateKg),
	}
}
