// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calc

// HeartRateZone is a training zone in beats per minute.
type HeartRateZone struct {
	Name   string `json:"name"`
	MinPct int    `json:"minPct"`
	MaxPct int    `json:"maxPct"`
	MinBPM int    `json:"minBpm"`
	MaxBPM int    `json:"maxBpm"`
}

var heartRateZones = []struct {
	name     string
	min, max int
}{
	{"Isınma", 50, 60},
	{"Yağ Yakımı", 60, 70},
	{"Aerobik", 70, 80},
	{"Anaerobik", 80, 90},
	{"Maksimum", 90, 100},
}

// HeartRateResult is the output of the target heart-rate calculator.
type HeartRateResult struct {
	MaxHR   int             `json:"maxHr"`
	Reserve int             `json:"reserve"`
	Zones   []HeartRateZone `json:"zones"`
}

// TargetHeartRate applies the Karvonen method: max HR = 220 − age, and each
// zone bound is resting + reserve × pct.
func TargetHeartRate(age, restingBPM float64) HeartRateResult {
	maxHR := 220 - age
	reserve := maxHR - restingBPM

	zones := make([]HeartRateZone, 0, len(heartRateZones))
	for _, z := range heartRateZones {
		zones = append(zones, HeartRateZone{
			Name:   z.name,
			MinPct: z.min,
			MaxPct: z.max,
			MinBPM: roundInt(restingBPM + reserve*float64(z.min)/100),
			MaxBPM: roundInt(restingBPM + reserve*float64(z.max)/100),
		})
	}

	return HeartRateResult{
		MaxHR:   roundInt(maxHR),
		Reserve: roundInt(reserve),
		Zones:   zones,
	}
}
