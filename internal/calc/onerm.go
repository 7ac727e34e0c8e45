// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calc

import "math"

// Epley estimates 1RM as w·(1 + 0.0333·reps).
func Epley(weight float64, reps int) float64 {
	return weight * (1 + 0.0333*float64(reps))
}

// Brzycki estimates 1RM as w·36/(37 − reps). The denominator is zero at
// 37 reps and negative beyond; callers restrict reps.
func Brzycki(weight float64, reps int) float64 {
	return weight * 36 / (37 - float64(reps))
}

// Lander estimates 1RM as 100w/(101.3 − 2.67123·reps).
func Lander(weight float64, reps int) float64 {
	return 100 * weight / (101.3 - 2.67123*float64(reps))
}

// Lombardi estimates 1RM as w·reps^0.10.
func Lombardi(weight float64, reps int) float64 {
	return weight * math.Pow(float64(reps), 0.10)
}

// Mayhew estimates 1RM as 100w/(52.2 + 41.9·e^(−0.055·reps)).
func Mayhew(weight float64, reps int) float64 {
	return 100 * weight / (52.2 + 41.9*math.Exp(-0.055*float64(reps)))
}

// StrengthLevel classifies a lift relative to body weight.
type StrengthLevel string

const (
	StrengthBeginner     StrengthLevel = "Başlangıç"
	StrengthNovice       StrengthLevel = "Acemi"
	StrengthIntermediate StrengthLevel = "Orta"
	StrengthAdvanced     StrengthLevel = "İleri"
	StrengthElite        StrengthLevel = "Elit"
)

// ClassifyStrength maps the 1RM / body-weight ratio to a level.
func ClassifyStrength(ratio float64) StrengthLevel {
	switch {
	case ratio < 0.5:
		return StrengthBeginner
	case ratio < 1.0:
		return StrengthNovice
	case ratio < 1.5:
		return StrengthIntermediate
	case ratio < 2.0:
		return StrengthAdvanced
	default:
		return StrengthElite
	}
}

// TrainingZone is one row of the percentage-of-1RM training table.
type TrainingZone struct {
	Percent int     `json:"percent"`
	Weight  float64 `json:"weight"`
	Reps    string  `json:"reps"`
	Purpose string  `json:"purpose"`
}

var trainingZones = []struct {
	percent int
	reps    string
	purpose string
}{
	{95, "1-2", "Maksimal kuvvet"},
	{90, "3-4", "Kuvvet"},
	{80, "6-8", "Kuvvet ve hipertrofi"},
	{70, "10-12", "Hipertrofi"},
	{60, "15-20", "Kas dayanıklılığı"},
	{50, "20+", "Isınma ve teknik"},
}

// OneRepMaxResult is the output of the 1RM calculator.
type OneRepMaxResult struct {
	Epley    float64        `json:"epley"`
	Brzycki  float64        `json:"brzycki"`
	Lander   float64        `json:"lander"`
	Lombardi float64        `json:"lombardi"`
	Mayhew   float64        `json:"mayhew"`
	Average  float64        `json:"average"`
	Ratio    float64        `json:"ratio"`
	Level    StrengthLevel  `json:"level"`
	Table    []TrainingZone `json:"table"`
}

// EvaluateOneRepMax runs all five estimators, averages them, classifies the
// average against body weight, and builds the training table.
func EvaluateOneRepMax(weight float64, reps int, bodyWeightKg float64) OneRepMaxResult {
	estimates := [5]float64{
		Epley(weight, reps),
		Brzycki(weight, reps),
		Lander(weight, reps),
		Lombardi(weight, reps),
		Mayhew(weight, reps),
	}

	var sum float64
	for _, e := range estimates {
		sum += e
	}
	avg := sum / float64(len(estimates))
	ratio := avg / bodyWeightKg

	table := make([]TrainingZone, 0, len(trainingZones))
	for _, z := range trainingZones {
		table = append(table, TrainingZone{
			Percent: z.percent,
			Weight:  round(avg*float64(z.percent)/100, 1),
			Reps:    z.reps,
			Purpose: z.purpose,
		})
	}

	return OneRepMaxResult{
		Epley:    round(estimates[0], 1),
		Brzycki:  round(estimates[1], 1),
		Lander:   round(estimates[2], 1),
		Lombardi: round(estimates[3], 1),
		Mayhew:   round(estimates[4], 1),
		Average:  round(avg, 1),
		Ratio:    round(ratio, 2),
		Level:    ClassifyStrength(ratio),
		Table:    table,
	}
}
