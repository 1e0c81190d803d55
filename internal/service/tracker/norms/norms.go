// Package norms implements the daily water and calorie target formulas.
// Water follows a weight-plus-activity baseline with a hot-weather bonus;
// calories follow the Mifflin-St Jeor equation without the sex-specific
// constant, plus a flat activity bonus.
package norms

import (
	"math"

	"github.com/heartmarshall/myhealth-backend/internal/domain"
)

// Water target parameters.
const (
	// WaterPerKgML is the baseline: 30 ml per kg of body weight.
	WaterPerKgML = 30.0
	// ActivityBlockMin is the size of an activity block granting a water bonus.
	ActivityBlockMin = 30
	// ActivityBlockBonusML is granted per complete activity block.
	ActivityBlockBonusML = 500.0
	// HeatThresholdC is the temperature above which the heat bonus applies.
	HeatThresholdC = 25.0
	// HeatBonusML is granted once when the known temperature exceeds HeatThresholdC.
	HeatBonusML = 500.0
)

// Mifflin-St Jeor coefficients. The sex-specific offset (+5/-161) is
// deliberately omitted: profiles carry no sex field, so the neutral form
// BMR = 10w + 6.25h - 5a is used throughout.
const (
	bmrWeightCoeff = 10.0
	bmrHeightCoeff = 6.25
	bmrAgeCoeff    = 5.0
)

// Calorie target parameters.
const (
	// CalorieActivityThresholdMin is the daily activity from which the
	// flat calorie bonus applies.
	CalorieActivityThresholdMin = 30
	// CalorieActivityBonusKcal is added once the threshold is reached.
	CalorieActivityBonusKcal = 400.0
)

// WaterTargetML returns the daily water target in millilitres.
//
//	water = weight*30 + 500*floor(activity/30) + heat
//
// heat is 500 when tempC is known and above 25 °C, else 0. An unknown
// temperature (nil) never grants the heat bonus.
func WaterTargetML(p domain.Profile, tempC *float64) float64 {
	target := p.WeightKg * WaterPerKgML
	target += float64(p.ActivityMinPerDay/ActivityBlockMin) * ActivityBlockBonusML
	if tempC != nil && *tempC > HeatThresholdC {
		target += HeatBonusML
	}
	return target
}

// BMRKcal returns the basal metabolic rate.
//
//	BMR = 10*weight + 6.25*height - 5*age
func BMRKcal(weightKg, heightCm float64, ageYears int) float64 {
	return bmrWeightCoeff*weightKg + bmrHeightCoeff*heightCm - bmrAgeCoeff*float64(ageYears)
}

// CalorieTargetKcal returns the daily calorie target in kilocalories.
// An explicit positive goal on the profile wins unchanged. Otherwise the
// target is BMR plus a flat 400 kcal bonus when daily activity reaches
// 30 minutes, rounded to the nearest whole value and clamped at zero.
func CalorieTargetKcal(p domain.Profile) float64 {
	if p.HasCalorieGoal() {
		return p.CalorieGoalKcal
	}

	target := BMRKcal(p.WeightKg, p.HeightCm, p.AgeYears)
	if p.ActivityMinPerDay >= CalorieActivityThresholdMin {
		target += CalorieActivityBonusKcal
	}
	return math.Max(0, math.Round(target))
}
