package main

import (
	"errors"
	"math"
	"strings"
)

/* ─── Conversion constants ───────────────────────────────────────────── */

const (
	lbsToKG  = 0.453592 // imperial weight (lbs) → kilograms
	inToCM   = 2.54     // imperial height (inches) → centimeters
	kcalToKJ = 4.184    // kilocalories → kilojoules
)

// activityFactors maps activity level strings to their TDEE multiplier.
// This is the single source of truth for known activity levels. Unrecognized
// levels fall back to defaultActivityFactor rather than erroring — existing
// behavior, kept intentionally.
var activityFactors = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"super_active":      1.9,
}

// defaultActivityFactor is used when activity_level doesn't match a known tier.
const defaultActivityFactor = 1.2

var (
	errUnknownUnitSystem    = errors.New("unit_system must be one of: metric, imperial")
	errUnknownBiologicalSex = errors.New("biological_sex must be one of: male, female, intersex")
)

/* ─── Calculation ────────────────────────────────────────────────────── */

// calculateBEE computes Basal Energy Expenditure via the Harris-Benedict
// equation and scales it by the activity factor to get TDEE. Imperial inputs
// are normalized to metric first. Fails only when unit_system or
// biological_sex is outside the enumerated set — form binding should reject
// everything else before this runs. Pure function, no I/O.
func calculateBEE(in beeFormInput) (beeFormOutput, error) {
	weightKG := in.Weight
	heightCM := in.Height
	switch strings.ToLower(in.UnitSystem) {
	case "metric":
		// already kg / cm
	case "imperial":
		weightKG *= lbsToKG
		heightCM *= inToCM
	default:
		return beeFormOutput{}, errUnknownUnitSystem
	}

	// Harris-Benedict: different coefficient set for male vs female.
	// Intersex uses the female variant, matching the original calculator.
	var bee float64
	switch strings.ToLower(in.BiologicalSex) {
	case "male":
		bee = 66.473 + 13.7516*weightKG + 5.0033*heightCM - 6.7550*float64(in.Age)
	case "female", "intersex":
		bee = 655.0955 + 9.5634*weightKG + 1.8496*heightCM - 4.6756*float64(in.Age)
	default:
		return beeFormOutput{}, errUnknownBiologicalSex
	}

	factor, found := activityFactors[strings.ToLower(in.ActivityLevel)]
	if !found {
		factor = defaultActivityFactor
	}
	tdee := bee * factor

	return beeFormOutput{
		BEEKcal:        round2(bee),
		BEEKj:          round2(bee * kcalToKJ),
		TDEEKcal:       round2(tdee),
		TDEEKj:         round2(tdee * kcalToKJ),
		ActivityFactor: factor,
	}, nil
}

// round2 rounds to 2 decimal places. Use math.Round to avoid systematic
// under-reporting from truncation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
