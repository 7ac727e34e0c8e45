// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calc

// Exercise is an activity with its metabolic equivalent (MET).
type Exercise struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	MET   float64 `json:"met"`
}

// Exercises lists the activities offered by the calorie-burn calculator,
// with MET values from the Compendium of Physical Activities.
var Exercises = []Exercise{
	{"yuruyus", "Yürüyüş", 3.5},
	{"tempolu-yuruyus", "Tempolu Yürüyüş", 5.0},
	{"kosu", "Koşu", 9.8},
	{"bisiklet", "Bisiklet", 7.5},
	{"yuzme", "Yüzme", 8.0},
	{"yoga", "Yoga", 2.5},
	{"agirlik", "Ağırlık Antrenmanı", 6.0},
	{"futbol", "Futbol", 7.0},
	{"ip-atlama", "İp Atlama", 11.0},
}

// FindExercise returns the exercise with the given key.
func FindExercise(key string) (Exercise, bool) {
	for _, e := range Exercises {
		if e.Key == key {
			return e, true
		}
	}
	return Exercise{}, false
}

// CaloriesBurned returns MET × kg × hours.
func CaloriesBurned(met, weightKg, minutes float64) float64 {
	return met * weightKg * minutes / 60
}

// BurnResult is the output of the calorie-burn calculator.
type BurnResult struct {
	Exercise Exercise `json:"exercise"`
	Minutes  float64  `json:"minutes"`
	Calories int      `json:"calories"`
}

func EvaluateBurn(e Exercise, weightKg, minutes float64) BurnResult {
	return BurnResult{
		Exercise: e,
		Minutes:  minutes,
		Calories: roundInt(CaloriesBurned(e.MET, weightKg, minutes)),
	}
}
