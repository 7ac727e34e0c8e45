// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calc

import "math"

// BodyFatNavy is the U.S. Navy circumference method (all lengths in cm).
// hipCm is only used for women. The logarithm is undefined when the
// circumference difference is not positive.
func BodyFatNavy(g Gender, heightCm, waistCm, neckCm, hipCm float64) float64 {
	if g == Male {
		return 495/(1.0324-0.19077*math.Log10(waistCm-neckCm)+0.15456*math.Log10(heightCm)) - 450
	}
	return 495/(1.29579-0.35004*math.Log10(waistCm+hipCm-neckCm)+0.22100*math.Log10(heightCm)) - 450
}

// BodyFatCategory is the ACE body-fat class.
type BodyFatCategory string

const (
	BodyFatEssential BodyFatCategory = "Temel Yağ"
	BodyFatAthlete   BodyFatCategory = "Sporcu"
	BodyFatFitness   BodyFatCategory = "Fit"
	BodyFatAverage   BodyFatCategory = "Ortalama"
	BodyFatObese     BodyFatCategory = "Obez"
)

// ClassifyBodyFat maps a body-fat percentage to the ACE classes.
func ClassifyBodyFat(g Gender, pct float64) BodyFatCategory {
	bounds := [4]float64{6, 14, 18, 25}
	if g == Female {
		bounds = [4]float64{14, 21, 25, 32}
	}
	switch {
	case pct < bounds[0]:
		return BodyFatEssential
	case pct < bounds[1]:
		return BodyFatAthlete
	case pct < bounds[2]:
		return BodyFatFitness
	case pct < bounds[3]:
		return BodyFatAverage
	default:
		return BodyFatObese
	}
}

// BodyFatResult is the output of the body-fat calculator.
type BodyFatResult struct {
	Percent    float64         `json:"percent"`
	Category   BodyFatCategory `json:"category"`
	FatMassKg  float64         `json:"fatMassKg"`
	LeanMassKg float64         `json:"leanMassKg"`
}

// EvaluateBodyFat runs the Navy method and splits body weight into fat
// and lean mass.
func EvaluateBodyFat(g Gender, weightKg, heightCm, waistCm, neckCm, hipCm float64) BodyFatResult {
	pct := BodyFatNavy(g, heightCm, waistCm, neckCm, hipCm)
	fat := weightKg * pct / 100
	return BodyFatResult{
		Percent:    round(pct, 1),
		Category:   ClassifyBodyFat(g, pct),
		FatMassKg:  round(fat, 1),
		LeanMassKg: round(weightKg-fat, 1),
	}
}

// Risk is a cardiometabolic risk label.
type Risk string

const (
	RiskLow      Risk = "Düşük"
	RiskModerate Risk = "Orta"
	RiskHigh     Risk = "Yüksek"
)

// RatioResult is the output of the waist-to-hip and waist-to-height
// calculators.
type RatioResult struct {
	Ratio float64 `json:"ratio"`
	Risk  Risk    `json:"risk"`
	Label string  `json:"label"`
}

// WaistToHip returns waist / hip with the WHO risk bands.
func WaistToHip(g Gender, waistCm, hipCm float64) RatioResult {
	ratio := waistCm / hipCm
	low, moderate := 0.95, 1.0
	if g == Female {
		low, moderate = 0.80, 0.85
	}

	r := RatioResult{Ratio: round(ratio, 2)}
	switch {
	case ratio <= low:
		r.Risk, r.Label = RiskLow, "Sağlıklı"
	case ratio <= moderate:
		r.Risk, r.Label = RiskModerate, "Artmış risk"
	default:
		r.Risk, r.Label = RiskHigh, "Yüksek risk"
	}
	return r
}

// WaistToHeight returns waist / height. Below 0.5 is considered healthy.
func WaistToHeight(waistCm, heightCm float64) RatioResult {
	ratio := waistCm / heightCm

	r := RatioResult{Ratio: round(ratio, 2)}
	switch {
	case ratio < 0.4:
		r.Risk, r.Label = RiskLow, "Zayıf"
	case ratio < 0.5:
		r.Risk, r.Label = RiskLow, "Sağlıklı"
	case ratio < 0.6:
		r.Risk, r.Label = RiskModerate, "Artmış risk"
	default:
		r.Risk, r.Label = RiskHigh, "Yüksek risk"
	}
	return r
}

// LeanBodyMassBoer is the Boer formula (kg, cm).
func LeanBodyMassBoer(g Gender, weightKg, heightCm float64) float64 {
	if g == Male {
		return 0.407*weightKg + 0.267*heightCm - 19.2
	}
	return 0.252*weightKg + 0.473*heightCm - 48.3
}

// LeanMassResult is the output of the lean-body-mass calculator.
type LeanMassResult struct {
	LeanMassKg     float64 `json:"leanMassKg"`
	FatMassKg      float64 `json:"fatMassKg"`
	BodyFatPercent float64 `json:"bodyFatPercent"`
}

func EvaluateLeanMass(g Gender, weightKg, heightCm float64) LeanMassResult {
	lbm := LeanBodyMassBoer(g, weightKg, heightCm)
	fat := weightKg - lbm
	return LeanMassResult{
		LeanMassKg:     round(lbm, 1),
		FatMassKg:      round(fat, 1),
		BodyFatPercent: round(fat/weightKg*100, 1),
	}
}

// BodySurfaceArea is the Mosteller formula, in m².
func BodySurfaceArea(weightKg, heightCm float64) float64 {
	return math.Sqrt(heightCm * weightKg / 3600)
}

// SurfaceAreaResult is the output of the body-surface-area calculator.
type SurfaceAreaResult struct {
	SquareMeters float64 `json:"squareMeters"`
}

func EvaluateSurfaceArea(weightKg, heightCm float64) SurfaceAreaResult {
	return SurfaceAreaResult{SquareMeters: round(BodySurfaceArea(weightKg, heightCm), 2)}
}
