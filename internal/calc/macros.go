// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calc

// Energy per gram of each macronutrient.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// MacroResult is the output of the macro-split calculator. Percentages are
// shares of the calorie target.
type MacroResult struct {
	Calories     int `json:"calories"`
	ProteinGrams int `json:"proteinGrams"`
	FatGrams     int `json:"fatGrams"`
	CarbGrams    int `json:"carbGrams"`
	ProteinPct   int `json:"proteinPct"`
	FatPct       int `json:"fatPct"`
	CarbPct      int `json:"carbPct"`
}

// MacroSplit divides a daily calorie target: 2.2 g protein per kg, 25% of
// calories from fat, the rest from carbohydrate. Carbs go negative when
// protein and fat alone exceed the target.
func MacroSplit(weightKg, targetKcal float64) MacroResult {
	proteinG := weightKg * 2.2
	proteinKcal := proteinG * kcalPerGramProtein
	fatG := 0.25 * targetKcal / kcalPerGramFat
	fatKcal := fatG * kcalPerGramFat
	carbKcal := targetKcal - proteinKcal - fatKcal
	carbG := carbKcal / kcalPerGramCarb

	return MacroResult{
		Calories:     roundInt(targetKcal),
		ProteinGrams: roundInt(proteinG),
		FatGrams:     roundInt(fatG),
		CarbGrams:    roundInt(carbG),
		ProteinPct:   roundInt(proteinKcal / targetKcal * 100),
		FatPct:       roundInt(fatKcal / targetKcal * 100),
		CarbPct:      roundInt(carbKcal / targetKcal * 100),
	}
}
