// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calc

// BMRFormula selects the basal-metabolic-rate equation.
type BMRFormula string

const (
	MifflinStJeor  BMRFormula = "mifflin"
	HarrisBenedict BMRFormula = "harris"
)

// BMRMifflin is the Mifflin-St Jeor equation (kg, cm, years).
func BMRMifflin(g Gender, weightKg, heightCm, age float64) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*age
	if g == Male {
		return base + 5
	}
	return base - 161
}

// BMRHarris is the revised Harris-Benedict equation (kg, cm, years).
func BMRHarris(g Gender, weightKg, heightCm, age float64) float64 {
	if g == Male {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*age
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*age
}

// BMR dispatches to the selected formula. Unknown formulas use Mifflin-St Jeor.
func BMR(f BMRFormula, g Gender, weightKg, heightCm, age float64) float64 {
	if f == HarrisBenedict {
		return BMRHarris(g, weightKg, heightCm, age)
	}
	return BMRMifflin(g, weightKg, heightCm, age)
}

// TDEE scales a BMR by the activity multiplier.
func TDEE(bmr float64, level ActivityLevel) float64 {
	return bmr * level.Multiplier()
}

// BMRResult reports both equations side by side, rounded to whole kcal.
type BMRResult struct {
	Mifflin        int `json:"mifflin"`
	HarrisBenedict int `json:"harrisBenedict"`
}

// EvaluateBMR computes both BMR equations.
func EvaluateBMR(g Gender, weightKg, heightCm, age float64) BMRResult {
	return BMRResult{
		Mifflin:        roundInt(BMRMifflin(g, weightKg, heightCm, age)),
		HarrisBenedict: roundInt(BMRHarris(g, weightKg, heightCm, age)),
	}
}

// CalorieTarget is a daily intake for one weight goal.
type CalorieTarget struct {
	Goal     string `json:"goal"`
	Label    string `json:"label"`
	Calories int    `json:"calories"`
}

// goalOffsets are the daily kcal adjustments applied to TDEE per goal.
// 500 kcal/day is roughly 0.5 kg per week at 7700 kcal/kg.
var goalOffsets = []struct {
	goal   string
	label  string
	offset float64
}{
	{"kilo-ver", "Kilo Vermek", -500},
	{"hafif-kilo-ver", "Hafif Kilo Vermek", -250},
	{"koru", "Kiloyu Korumak", 0},
	{"hafif-kilo-al", "Hafif Kilo Almak", 250},
	{"kilo-al", "Kilo Almak", 500},
}

// TDEEResult is the output of the daily calorie calculator.
type TDEEResult struct {
	Formula    BMRFormula      `json:"formula"`
	BMR        int             `json:"bmr"`
	Multiplier float64         `json:"multiplier"`
	TDEE       int             `json:"tdee"`
	Targets    []CalorieTarget `json:"targets"`
}

// EvaluateTDEE computes BMR with the chosen formula, scales it to TDEE, and
// derives goal-based calorie targets from the unrounded TDEE.
func EvaluateTDEE(f BMRFormula, g Gender, weightKg, heightCm, age float64, level ActivityLevel) TDEEResult {
	if f != HarrisBenedict {
		f = MifflinStJeor
	}
	bmr := BMR(f, g, weightKg, heightCm, age)
	tdee := TDEE(bmr, level)

	targets := make([]CalorieTarget, 0, len(goalOffsets))
	for _, o := range goalOffsets {
		targets = append(targets, CalorieTarget{
			Goal:     o.goal,
			Label:    o.label,
			Calories: roundInt(tdee + o.offset),
		})
	}

	return TDEEResult{
		Formula:    f,
		BMR:        roundInt(bmr),
		Multiplier: level.Multiplier(),
		TDEE:       roundInt(tdee),
		Targets:    targets,
	}
}
