// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calc

// Goal is the body-composition goal of the protein calculator.
type Goal string

const (
	GoalLose     Goal = "kilo-verme"
	GoalMaintain Goal = "koruma"
	GoalGain     Goal = "kas-kazanimi"
)

// ProteinMultiplier returns grams of protein per kg of body weight. The
// cases overlap; the first matching case wins.
func ProteinMultiplier(goal Goal, level ActivityLevel) float64 {
	active := level == VeryActive || level == ExtraActive
	switch {
	case goal == GoalGain && active:
		return 2.2
	case goal == GoalGain:
		return 1.8
	case goal == GoalLose && active:
		return 2.0
	case goal == GoalLose:
		return 1.6
	case level == ExtraActive:
		return 1.8
	case level == VeryActive:
		return 1.6
	case level == ModeratelyActive:
		return 1.3
	case level == LightlyActive:
		return 1.0
	default:
		return 0.8
	}
}

// ProteinResult is the output of the protein calculator.
type ProteinResult struct {
	Multiplier float64 `json:"multiplier"`
	Grams      int     `json:"grams"`
	Calories   int     `json:"calories"`
}

// ProteinTarget computes the daily protein target: weight × multiplier.
func ProteinTarget(weightKg float64, goal Goal, level ActivityLevel) ProteinResult {
	m := ProteinMultiplier(goal, level)
	grams := weightKg * m
	return ProteinResult{
		Multiplier: m,
		Grams:      roundInt(grams),
		Calories:   roundInt(grams * 4),
	}
}
