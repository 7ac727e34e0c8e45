// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calc

// IdealWeightDevine is the Devine formula: 50 kg (men) or 45.5 kg (women)
// plus 2.3 kg per inch above five feet.
func IdealWeightDevine(g Gender, heightCm float64) float64 {
	inchesOver := (heightCm - 152.4) / 2.54
	if g == Male {
		return 50 + 2.3*inchesOver
	}
	return 45.5 + 2.3*inchesOver
}

// IdealWeightBroca is the Broca index with the usual 10% / 15% reduction.
func IdealWeightBroca(g Gender, heightCm float64) float64 {
	if g == Male {
		return (heightCm - 100) * 0.9
	}
	return (heightCm - 100) * 0.85
}

// IdealWeightResult is the output of the ideal-weight calculator.
type IdealWeightResult struct {
	Devine        float64     `json:"devine"`
	Broca         float64     `json:"broca"`
	HealthyWeight WeightRange `json:"healthyWeight"`
}

// EvaluateIdealWeight computes both estimates and the healthy-BMI range.
func EvaluateIdealWeight(g Gender, heightCm float64) IdealWeightResult {
	return IdealWeightResult{
		Devine:        round(IdealWeightDevine(g, heightCm), 1),
		Broca:         round(IdealWeightBroca(g, heightCm), 1),
		HealthyWeight: HealthyWeightRange(heightCm / 100),
	}
}
