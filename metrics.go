package main

import (
	"math"
	"sort"
)

// kcalPerKilogram is the fixed conversion used for deficit math:
// 7700 kcal is approximately 1 kg of fat mass.
const kcalPerKilogram = 7700

// computeBMR computes basal metabolic rate via Mifflin-St Jeor:
// 10×weight + 6.25×height − 5×age, +5 for male, −161 otherwise.
// Result rounded to the nearest kcal. Total function: callers supply sane
// positive inputs; no validation happens here.
func computeBMR(p *UserProfile) int {
	bmr := 10*p.CurrentWeight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr))
}

// computeTDEE scales BMR by the activity level multiplier. An unknown level
// falls back to sedentary; it cannot occur through the app's own flows, but
// keeps the function total for hand-edited documents.
func computeTDEE(bmr int, level ActivityLevel) int {
	mult, ok := level.Multiplier()
	if !ok {
		mult, _ = ActivitySedentary.Multiplier()
	}
	return int(math.Round(float64(bmr) * mult))
}

// round2 rounds to 2 decimal places, the precision used for all displayed
// weights.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// round1 rounds to 1 decimal place (logged weights, sleep, water).
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// sortLogsByDate returns a copy of logs in ascending date order. The stored
// collection makes no ordering promise, so every consumer sorts.
func sortLogsByDate(logs []DailyLog) []DailyLog {
	sorted := make([]DailyLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// latestLoggedWeight returns the weight of the most recent log, or fallback
// when no logs exist. Should duplicate dates ever appear (e.g. a hand-edited
// import), the stable sort makes the pick deterministic: last occurrence wins.
func latestLoggedWeight(logs []DailyLog, fallback float64) float64 {
	if len(logs) == 0 {
		return fallback
	}
	sorted := sortLogsByDate(logs)
	return sorted[len(sorted)-1].Weight
}

// computeMetrics derives the full metric set from the profile and log
// history. Pure: "today" is an explicit input, and the output is safe to
// discard and recompute on every state change.
func computeMetrics(p *UserProfile, logs []DailyLog, todayDate Date) HealthMetrics {
	bmr := computeBMR(p)
	tdee := computeTDEE(bmr, p.ActivityLevel)

	// Negative for a weight-gain goal; all formulas below stay sign-consistent.
	totalWeightToLose := p.CurrentWeight - p.TargetWeight
	totalDays := daysBetween(p.StartDate, p.TargetDate)

	// Guard: a zero-length plan means no daily deficit, not a division blowup.
	dailyDeficit := 0
	if totalDays > 0 {
		dailyDeficit = int(math.Round(totalWeightToLose * kcalPerKilogram / float64(totalDays)))
	}

	daysPassed := daysBetween(p.StartDate, todayDate)

	// Ratio of the plan elapsed so far, clamped to [0, 1]. A zero-length plan
	// is pinned to 1 (already over), which also pins the projection to the
	// target weight.
	progressRatio := 1.0
	if totalDays > 0 {
		progressRatio = math.Min(math.Max(float64(daysPassed)/float64(totalDays), 0), 1)
	}
	projectedToday := round2(p.CurrentWeight - totalWeightToLose*progressRatio)

	latestWeight := latestLoggedWeight(logs, p.CurrentWeight)

	// "On track" = within 0.5 kg of the projected weight, or below it. For a
	// weight-gain goal this comparison's intuitive meaning flips; kept as a
	// known asymmetry rather than silently inverted.
	isOnTrack := latestWeight <= projectedToday+0.5

	daysRemaining := totalDays - daysPassed
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	return HealthMetrics{
		BMR:                  bmr,
		TDEE:                 tdee,
		DailyDeficitRequired: dailyDeficit,
		ProjectedWeightToday: projectedToday,
		DaysRemaining:        daysRemaining,
		IsOnTrack:            isOnTrack,
	}
}
